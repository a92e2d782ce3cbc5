// Command biasedmap is a line-oriented test driver: it reads an
// operations file of insert/search/delete commands and replays them
// against one of this module's engines, selected by flag. It is an
// external collaborator, not part of the core engines.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/niceyeti/biasedmap/internal/avltree"
	"github.com/niceyeti/biasedmap/internal/hashtable"
	"github.com/niceyeti/biasedmap/internal/lrucache"
	"github.com/niceyeti/biasedmap/internal/prng"
	"github.com/niceyeti/biasedmap/internal/skiplist"
	"github.com/niceyeti/biasedmap/internal/splaytree"
	"github.com/niceyeti/biasedmap/internal/treap"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// engine is the minimal contract the driver needs; every package in this
// module that implements biasedmap.Engine[string,int] already satisfies it
// structurally.
type engine interface {
	Insert(key string, value int, weight uint64) error
	Lookup(key string) (int, bool)
	Erase(key string) bool
}

func run(args []string) int {
	fs := flag.NewFlagSet("biasedmap", flag.ContinueOnError)
	var (
		useTreap     = fs.Bool("treap", false, "use the biased treap engine")
		useSkiplist  = fs.Bool("skiplist", false, "use the biased skip list engine")
		useHashtable = fs.Bool("hashtable", false, "use the biased hash table engine")
		useSplaytree = fs.Bool("splaytree", false, "use the splay tree engine")
		useMap       = fs.Bool("map", false, "use a plain map for reference semantics")
		useNop       = fs.Bool("nop", false, "discard every command (control)")
		useAVL       = fs.Bool("avl", false, "use the deterministic AVL reference engine")
		useLRU       = fs.Bool("lru", false, "use the LRU reference cache")
		chained      = fs.Bool("chained", false, "with -hashtable, use the chained variant instead of open addressing")
		selfAdjust   = fs.Bool("self-adjust", false, "enable adaptive mode where the selected engine supports it")
		size         = fs.Int("size", 16, "engine size parameter (skip list max_level, hash table/LRU initial capacity)")
	)
	fs.SetOutput(os.Stderr)

	usage := "usage: biasedmap -treap|-skiplist|-hashtable|-splaytree|-map|-nop|-avl|-lru [-chained] [-self-adjust] [-size=<n>] <operations-file>"
	if err := fs.Parse(args); err != nil {
		return 1
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, usage)
		return 1
	}

	selected := 0
	for _, v := range []*bool{useTreap, useSkiplist, useHashtable, useSplaytree, useMap, useNop, useAVL, useLRU} {
		if *v {
			selected++
		}
	}
	if selected != 1 {
		fmt.Fprintln(os.Stderr, usage)
		return 1
	}

	f, err := os.Open(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: could not open operations file: %v\n", err)
		return 1
	}
	defer f.Close()

	eng, err := selectEngine(engineChoice{
		treap: *useTreap, skiplist: *useSkiplist, hashtable: *useHashtable,
		splaytree: *useSplaytree, useMap: *useMap, nop: *useNop, avl: *useAVL, lru: *useLRU,
		chained: *chained, selfAdjust: *selfAdjust, size: *size,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, usage)
		return 1
	}

	slog.Info("starting driver", slog.String("operations_file", fs.Arg(0)), slog.Int("size", *size))

	stats := replay(eng, bufio.NewScanner(f))

	slog.Info("driver finished",
		slog.Int("inserts", stats.inserts),
		slog.Int("searches", stats.searches),
		slog.Int("deletes", stats.deletes),
		slog.Int("misses", stats.misses),
	)

	return 0
}

type engineChoice struct {
	treap, skiplist, hashtable, splaytree, useMap, nop, avl, lru bool
	chained, selfAdjust                                          bool
	size                                                          int
}

// selectEngine constructs the engine named by choice.
func selectEngine(c engineChoice) (engine, error) {
	less := func(a, b string) bool { return a < b }

	switch {
	case c.treap:
		return treap.New[string, int](less, prng.New(1), c.selfAdjust), nil
	case c.skiplist:
		return skiplist.New[string, int](c.size, less, prng.New(1))
	case c.hashtable:
		if c.chained {
			return hashtable.NewChained[string, int](c.size, hashtable.StringHash)
		}
		return hashtable.NewOpen[string, int](c.size, hashtable.StringHash)
	case c.splaytree:
		return splaytree.New[string, int](less), nil
	case c.avl:
		return avltree.New[string, int](less), nil
	case c.lru:
		return lrucache.New[string, int](c.size)
	case c.useMap:
		return newMapEngine(), nil
	case c.nop:
		return nopEngine{}, nil
	default:
		return nil, fmt.Errorf("no engine selected")
	}
}

// mapEngine adapts a plain Go map to the engine interface, as the "-map"
// reference-semantics baseline.
type mapEngine struct {
	m map[string]int
}

func newMapEngine() *mapEngine {
	return &mapEngine{m: make(map[string]int)}
}

func (e *mapEngine) Insert(key string, value int, weight uint64) error {
	if _, ok := e.m[key]; ok {
		return nil
	}
	e.m[key] = value
	return nil
}

func (e *mapEngine) Lookup(key string) (int, bool) {
	v, ok := e.m[key]
	return v, ok
}

func (e *mapEngine) Erase(key string) bool {
	if _, ok := e.m[key]; !ok {
		return false
	}
	delete(e.m, key)
	return true
}

// nopEngine discards every command -- the "-nop" control baseline, useful
// for isolating the driver's own I/O and parsing overhead from any engine's
// cost.
type nopEngine struct{}

func (nopEngine) Insert(string, int, uint64) error { return nil }
func (nopEngine) Lookup(string) (int, bool)        { return 0, false }
func (nopEngine) Erase(string) bool                { return false }

type replayStats struct {
	inserts, searches, deletes, misses int
}

// replay parses and executes operations-file lines against eng: "i <key>
// [weight]" inserts, "s <key>" searches, "d <key>" deletes.
func replay(eng engine, scanner *bufio.Scanner) replayStats {
	var stats replayStats

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)

		switch fields[0] {
		case "i":
			if len(fields) < 2 {
				continue
			}
			key := fields[1]
			var weight uint64 = 1
			if len(fields) >= 3 {
				if w, err := strconv.ParseUint(fields[2], 10, 64); err == nil {
					weight = w
				}
			}
			// value is the insertion's sequence number, so a hit's printed
			// value distinguishes which insert produced it instead of every
			// hit reading back the same placeholder.
			_ = eng.Insert(key, stats.inserts, weight)
			stats.inserts++
		case "s":
			if len(fields) < 2 {
				continue
			}
			key := fields[1]
			if v, ok := eng.Lookup(key); ok {
				fmt.Printf("%s: %d\n", key, v)
			} else {
				fmt.Printf("%s: not found\n", key)
				stats.misses++
			}
			stats.searches++
		case "d":
			if len(fields) < 2 {
				continue
			}
			eng.Erase(fields[1])
			stats.deletes++
		}
	}

	return stats
}
