package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/thisisniagahub/Quran-Pulse-sub001/internal/config"
	"github.com/thisisniagahub/Quran-Pulse-sub001/translit"
)

// app carries state shared by all subcommands.
type app struct {
	configPath string
	verbose    bool

	cfg    *config.Config
	logger *zap.Logger
	engine *translit.Engine
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "translit",
		Short: "Convert simplified Romanized Arabic to academic transliteration",
		Long: `translit converts simplified Romanized Arabic such as
"Bismillahir Rahmanir Raheem" into academic transliteration
("Bismillāhir-Raḥmānir-Raḥīm") using curated phrase and word tables.

Whole phrases are matched first; otherwise each whitespace-delimited
word is looked up on its own. Unknown words pass through unchanged.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "path to YAML config file (default $"+config.EnvPath+")")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		newConvertCmd(a),
		newStatsCmd(a),
		newAyahsCmd(a),
		newTablesCmd(a),
	)
	return root
}

// setup loads configuration, the logger and the engine.
// A logger set beforehand is kept.
func (a *app) setup() error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg

	if a.logger == nil {
		logger, err := newLogger(cfg.LogLevel, a.verbose)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		a.logger = logger
	}

	engine, err := loadEngine(cfg)
	if err != nil {
		return err
	}
	a.engine = engine

	a.logger.Debug("engine ready",
		zap.Int("phrases", engine.Phrases().Len()),
		zap.Int("words", engine.Words().Len()),
		zap.String("phrases_path", cfg.PhrasesPath),
		zap.String("words_path", cfg.WordsPath))
	return nil
}

func newLogger(level string, verbose bool) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	if verbose {
		lvl = zapcore.DebugLevel
	}
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(lvl)
	return zc.Build()
}

// loadEngine builds the engine from the configured table files. A table
// with no configured path falls back to the embedded one.
func loadEngine(cfg *config.Config) (*translit.Engine, error) {
	def := translit.Default()
	if cfg.PhrasesPath == "" && cfg.WordsPath == "" {
		return def, nil
	}

	phrases, words := def.Phrases(), def.Words()
	var err error
	if cfg.PhrasesPath != "" {
		if phrases, err = translit.ReadTableFile(translit.PhraseTable, cfg.PhrasesPath); err != nil {
			return nil, err
		}
	}
	if cfg.WordsPath != "" {
		if words, err = translit.ReadTableFile(translit.WordTable, cfg.WordsPath); err != nil {
			return nil, err
		}
	}
	return translit.New(phrases, words), nil
}
