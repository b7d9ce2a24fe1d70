package morph

import (
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Morphing.VertexLoopMapper != "clustering" {
		t.Errorf("got mapper %q, want clustering", cfg.Morphing.VertexLoopMapper)
	}
	if cfg.Morphing.VertexAlignmentNorm != "l1" {
		t.Errorf("got norm %q, want l1", cfg.Morphing.VertexAlignmentNorm)
	}
	c := cfg.Morphing.Clustering
	if !c.BalanceClusters || c.MaxIterations != 50 || c.RandomSeed != 42 {
		t.Errorf("got clustering config %+v", c)
	}
}

func TestDecodeConfig(t *testing.T) {
	cfg, err := DecodeConfig(`
[morphing]
vertex_loop_mapper = "greedy"
vertex_alignment_norm = "l2"
euclidean_alignment_norm = "linf"

[morphing.clustering]
balance_clusters = false
max_iterations = 10
random_seed = 7
`)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Morphing.VertexLoopMapper != "greedy" {
		t.Errorf("got mapper %q", cfg.Morphing.VertexLoopMapper)
	}
	if cfg.Morphing.EuclideanAlignmentNorm != "linf" {
		t.Errorf("got euclidean norm %q", cfg.Morphing.EuclideanAlignmentNorm)
	}
	if cfg.Morphing.Clustering.BalanceClusters {
		t.Error("balance_clusters should be off")
	}

	// Absent keys keep the defaults.
	cfg, err = DecodeConfig(`
[morphing]
vertex_loop_mapper = "simple"
`)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Morphing.VertexAlignmentNorm != "l1" {
		t.Errorf("got norm %q, want default l1", cfg.Morphing.VertexAlignmentNorm)
	}
	if cfg.Morphing.Clustering.RandomSeed != 42 {
		t.Errorf("got seed %d, want default 42", cfg.Morphing.Clustering.RandomSeed)
	}
}

func TestDecodeConfigInvalid(t *testing.T) {
	if _, err := DecodeConfig("[morphing]\nvertex_loop_mapper = \"optimal\"\n"); err == nil {
		t.Error("expected error for unknown mapper")
	}
	if _, err := DecodeConfig("[morphing]\nvertex_alignment_norm = \"l3\"\n"); err == nil {
		t.Error("expected error for unknown norm")
	}
	if _, err := DecodeConfig("not toml at all ["); err == nil {
		t.Error("expected error for malformed TOML")
	}
}

func TestConfigFactories(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Morphing.Clustering.MaxIterations = 10
	cfg.Morphing.Clustering.RandomSeed = 7
	cfg.Morphing.Clustering.BalanceClusters = false

	m, err := cfg.LoopMapper(nil)
	if err != nil {
		t.Fatal(err)
	}
	cm, ok := m.(*ClusteringMapper)
	if !ok {
		t.Fatalf("got %T, want *ClusteringMapper", m)
	}
	if cm.MaxIterations != 10 || cm.Seed != 7 || cm.Balance {
		t.Errorf("got %+v", cm)
	}

	cfg.Morphing.VertexLoopMapper = "discrete"
	m, err = cfg.LoopMapper(nil)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := m.(DiscreteMapper); !ok {
		t.Fatalf("got %T, want DiscreteMapper", m)
	}

	a, err := cfg.Aligner(true, true)
	if err != nil {
		t.Fatal(err)
	}
	if aa, ok := a.(AngularAligner); !ok || aa.Norm != NormL1 {
		t.Errorf("got %#v, want angular with l1", a)
	}

	cfg.Morphing.EuclideanAlignmentNorm = "linf"
	a, err = cfg.Aligner(false, true)
	if err != nil {
		t.Fatal(err)
	}
	if ea, ok := a.(EuclideanAligner); !ok || ea.Norm != NormLinf {
		t.Errorf("got %#v, want euclidean with linf override", a)
	}

	if _, err := cfg.Aligner(false, false); err != nil {
		t.Fatal(err)
	}
}
