package morph

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config is the TOML-decodable configuration for morphing behavior.
//
//	[morphing]
//	vertex_loop_mapper = "clustering"
//	vertex_alignment_norm = "l1"
//
//	[morphing.clustering]
//	balance_clusters = true
//	max_iterations = 50
//	random_seed = 42
type Config struct {
	Morphing MorphingConfig `toml:"morphing"`
}

type MorphingConfig struct {
	// VertexLoopMapper names the loop mapping strategy: simple, greedy,
	// discrete, clustering, or hungarian.
	VertexLoopMapper string `toml:"vertex_loop_mapper"`
	// VertexAlignmentNorm is the norm used by all aligners: l1, l2, or linf.
	VertexAlignmentNorm string `toml:"vertex_alignment_norm"`
	// AngularAlignmentNorm and EuclideanAlignmentNorm override
	// VertexAlignmentNorm for their strategy when non-empty.
	AngularAlignmentNorm   string `toml:"angular_alignment_norm"`
	EuclideanAlignmentNorm string `toml:"euclidean_alignment_norm"`

	Clustering ClusteringConfig `toml:"clustering"`
}

type ClusteringConfig struct {
	BalanceClusters bool  `toml:"balance_clusters"`
	MaxIterations   int   `toml:"max_iterations"`
	RandomSeed      int64 `toml:"random_seed"`
}

// DefaultConfig returns the documented defaults: clustering mapper with
// balanced clusters, and the L1 norm everywhere.
func DefaultConfig() Config {
	return Config{
		Morphing: MorphingConfig{
			VertexLoopMapper:    string(StrategyClustering),
			VertexAlignmentNorm: string(NormL1),
			Clustering: ClusteringConfig{
				BalanceClusters: true,
				MaxIterations:   DefaultKMeansIterations,
				RandomSeed:      DefaultKMeansSeed,
			},
		},
	}
}

// LoadConfig decodes a TOML file over the defaults, so absent keys keep
// their documented values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("morph: reading config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// DecodeConfig decodes TOML text over the defaults.
func DecodeConfig(data string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.Decode(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("morph: decoding config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if _, err := ParseStrategy(c.Morphing.VertexLoopMapper); err != nil {
		return err
	}
	if _, err := ParseNorm(c.Morphing.VertexAlignmentNorm); err != nil {
		return err
	}
	for _, s := range []string{c.Morphing.AngularAlignmentNorm, c.Morphing.EuclideanAlignmentNorm} {
		if s == "" {
			continue
		}
		if _, err := ParseNorm(s); err != nil {
			return err
		}
	}
	return nil
}

// LoopMapper builds the configured loop mapper. The solver is only consulted
// by the hungarian strategy and may be nil otherwise.
func (c Config) LoopMapper(solver AssignmentSolver) (LoopMapper, error) {
	strategy, err := ParseStrategy(c.Morphing.VertexLoopMapper)
	if err != nil {
		return nil, err
	}
	if strategy == StrategyClustering {
		return &ClusteringMapper{
			MaxIterations: c.Morphing.Clustering.MaxIterations,
			Seed:          c.Morphing.Clustering.RandomSeed,
			Balance:       c.Morphing.Clustering.BalanceClusters,
		}, nil
	}
	return NewLoopMapper(strategy, solver)
}

// Aligner builds the configured aligner for a pair of shapes, applying the
// per-strategy norm override when one is set.
func (c Config) Aligner(closed1, closed2 bool) (Aligner, error) {
	base, err := ParseNorm(c.Morphing.VertexAlignmentNorm)
	if err != nil {
		return nil, err
	}
	pick := func(override string) (Norm, error) {
		if override == "" {
			return base, nil
		}
		return ParseNorm(override)
	}

	switch {
	case closed1 && closed2:
		norm, err := pick(c.Morphing.AngularAlignmentNorm)
		if err != nil {
			return nil, err
		}
		return AngularAligner{Norm: norm}, nil
	case !closed1 && !closed2:
		return SequentialAligner{}, nil
	default:
		norm, err := pick(c.Morphing.EuclideanAlignmentNorm)
		if err != nil {
			return nil, err
		}
		return EuclideanAligner{Norm: norm}, nil
	}
}
