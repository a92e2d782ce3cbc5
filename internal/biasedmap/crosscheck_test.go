package biasedmap_test

import (
	"fmt"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/niceyeti/biasedmap/internal/avltree"
	"github.com/niceyeti/biasedmap/internal/biasedmap"
	"github.com/niceyeti/biasedmap/internal/hashtable"
	"github.com/niceyeti/biasedmap/internal/prng"
	"github.com/niceyeti/biasedmap/internal/skiplist"
	"github.com/niceyeti/biasedmap/internal/treap"
)

// crossEngine is the common surface every engine in this module exposes,
// used here to drive an identical operation sequence against all of them
// and compare outcomes -- the deterministic AVL tree (internal/avltree)
// serves as the ground truth each biased engine is checked against,
// since it has no internal shape dependent on randomness or access order.
type crossEngine interface {
	Insert(key string, value int, weight uint64) error
	Lookup(key string) (int, bool)
	Erase(key string) bool
	Len() int
}

func buildEngines(t *testing.T) map[string]crossEngine {
	less := func(a, b string) bool { return a < b }

	sl, err := skiplist.New[string, int](20, less, prng.New(9))
	if err != nil {
		t.Fatal(err)
	}
	ht, err := hashtable.NewOpen[string, int](32, hashtable.StringHash)
	if err != nil {
		t.Fatal(err)
	}

	return map[string]crossEngine{
		"treap":    treap.New[string, int](less, prng.New(9), false),
		"skiplist": sl,
		"hashtable": ht,
		"avl":      avltree.New[string, int](less),
	}
}

// TestSeedScenarioMembershipUnderChurnCrossEngine inserts 1000 keys, erases
// the middle 500, and checks membership identically against every engine,
// asserting they all agree with each other (and with the deterministic AVL
// reference) on which keys survive.
func TestSeedScenarioMembershipUnderChurnCrossEngine(t *testing.T) {
	Convey("every engine agrees on membership after a mid-range churn", t, func() {
		engines := buildEngines(t)

		keys := make([]string, 1000)
		for i := range keys {
			keys[i] = fmt.Sprintf("k%08d", i)
		}

		for name, eng := range engines {
			for i, k := range keys {
				So(eng.Insert(k, i, uint64(i%11)+1), ShouldBeNil)
			}
			for i := 250; i < 750; i++ {
				So(eng.Erase(keys[i]), ShouldBeTrue)
			}
			So(eng.Len(), ShouldEqual, 500)
			_ = name
		}

		for i, k := range keys {
			wantFound := i < 250 || i >= 750
			for name, eng := range engines {
				v, ok := eng.Lookup(k)
				So(ok, ShouldEqual, wantFound)
				if wantFound {
					So(v, ShouldEqual, i)
				}
				_ = name
			}
		}
	})
}

// TestSeedScenarioGrowthCrossEngine exercises a hash-table growth scenario
// (capacity 8 growing past 100 inserts) alongside the same insert sequence
// run through the deterministic AVL tree, confirming both agree on the
// final membership regardless of the hash table's internal resizes.
func TestSeedScenarioGrowthCrossEngine(t *testing.T) {
	Convey("hash table growth does not disturb membership relative to the AVL reference", t, func() {
		less := func(a, b string) bool { return a < b }
		ref := avltree.New[string, int](less)
		ht, err := hashtable.NewOpen[string, int](8, hashtable.StringHash)
		So(err, ShouldBeNil)

		for i := 0; i < 100; i++ {
			k := fmt.Sprintf("g%04d", i)
			So(ref.Insert(k, i, uint64(i%13)+1), ShouldBeNil)
			So(ht.Insert(k, i, uint64(i%13)+1), ShouldBeNil)
		}

		So(ht.Cap(), ShouldBeGreaterThanOrEqualTo, 128)
		So(ht.Len(), ShouldEqual, ref.Len())

		for i := 0; i < 100; i++ {
			k := fmt.Sprintf("g%04d", i)
			refV, refOK := ref.Lookup(k)
			htV, htOK := ht.Lookup(k)
			So(htOK, ShouldEqual, refOK)
			So(htV, ShouldEqual, refV)
		}
	})
}

var _ biasedmap.Engine[string, int] = (*avltree.AVLTree[string, int])(nil)
