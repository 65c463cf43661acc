package main

import (
	"math/rand"
	"os"
	"time"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/seipan/bst"
)

var rootCmd = &cobra.Command{
	Use:   "bst",
	Short: "Race the binary search tree against a plain map",
	Long: `Inserts N integer keys into both a bst.Tree and a map-backed baseline,
then times membership probes and an in-order dump of each. Pass --sorted to
insert the keys in ascending order and watch the tree degenerate into a
chain.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := cmd.Flags().GetInt("keys")
		if err != nil {
			return err
		}
		sorted, err := cmd.Flags().GetBool("sorted")
		if err != nil {
			return err
		}
		debug, err := cmd.Flags().GetBool("debug")
		if err != nil {
			return err
		}

		logger := newLogger(debug)
		logger.Info().Int("keys", n).Bool("sorted", sorted).Msg("starting benchmark")

		keys := makeKeys(n, sorted)

		tree := bst.New()
		db := bst.NewMapdb()
		defer db.Close()

		treeInsert := measure(func() { insertTree(keys, tree) })
		logger.Debug().Dur("took", treeInsert).Msg("tree insert done")
		dbInsert := measure(func() { insertMap(keys, db) })
		logger.Debug().Dur("took", dbInsert).Msg("map insert done")

		treeProbe := measure(func() { probeTree(keys, tree) })
		logger.Debug().Dur("took", treeProbe).Msg("tree probe done")
		dbProbe := measure(func() { probeMap(keys, db) })
		logger.Debug().Dur("took", dbProbe).Msg("map probe done")

		treeDump := measure(func() { tree.Items() })
		dbDump := measure(func() { db.Items() })

		logger.Info().Int("len", tree.Len()).Int("depth", tree.Depth()).Msg("tree built")

		return pterm.DefaultTable.WithHasHeader().WithData(pterm.TableData{
			{"phase", "tree", "map"},
			{"insert", treeInsert.String(), dbInsert.String()},
			{"probe", treeProbe.String(), dbProbe.String()},
			{"dump", treeDump.String(), dbDump.String()},
		}).Render()
	},
}

// makeKeys returns n distinct keys, ascending when sorted is set and
// shuffled otherwise.
func makeKeys(n int, sorted bool) []int {
	if sorted {
		keys := make([]int, n)
		for i := range keys {
			keys[i] = i
		}
		return keys
	}
	return rand.Perm(n)
}

func insertTree(keys []int, tree *bst.Tree) {
	for _, k := range keys {
		tree.Insert(bst.Int(k))
	}
}

func insertMap(keys []int, db *bst.Mapdb) {
	for _, k := range keys {
		db.Add(bst.Int(k))
	}
}

// probeTree looks up every key plus an equal number of absent ones.
func probeTree(keys []int, tree *bst.Tree) {
	for _, k := range keys {
		tree.Contains(bst.Int(k))
		tree.Contains(bst.Int(k + len(keys)))
	}
}

func probeMap(keys []int, db *bst.Mapdb) {
	for _, k := range keys {
		db.Has(bst.Int(k))
		db.Has(bst.Int(k + len(keys)))
	}
}

func measure(fn func()) time.Duration {
	start := time.Now()
	fn()
	return time.Since(start)
}

func newLogger(debug bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	consoleWriter := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}
	return zerolog.New(consoleWriter).Level(level).With().Timestamp().Logger()
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().IntP("keys", "n", 100000, "number of keys to insert")
	rootCmd.Flags().Bool("sorted", false, "insert keys in ascending order")
	rootCmd.Flags().Bool("debug", false, "log per-phase timings")
}
