package main

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestReplay(t *testing.T) {
	Convey("insert/search/delete lines drive the engine and count stats", t, func() {
		eng := newMapEngine()
		ops := "i apple 5\ni banana 3\ns apple\ns cherry\nd apple\ns apple\n"
		stats := replay(eng, bufio.NewScanner(strings.NewReader(ops)))

		So(stats.inserts, ShouldEqual, 2)
		So(stats.searches, ShouldEqual, 3)
		So(stats.deletes, ShouldEqual, 1)
		So(stats.misses, ShouldEqual, 2) // cherry (never inserted), apple (post-delete)

		_, ok := eng.Lookup("banana")
		So(ok, ShouldBeTrue)
		_, ok = eng.Lookup("apple")
		So(ok, ShouldBeFalse)
	})

	Convey("blank lines are skipped and an insert without a weight still inserts", t, func() {
		eng := newMapEngine()
		ops := "\ni onlykey\n\ns onlykey\n"
		stats := replay(eng, bufio.NewScanner(strings.NewReader(ops)))

		So(stats.inserts, ShouldEqual, 1) // weight defaults to 1 when absent
		v, ok := eng.Lookup("onlykey")
		So(ok, ShouldBeTrue)
		So(v, ShouldEqual, 0)
	})
}

func TestNopEngine(t *testing.T) {
	Convey("nopEngine discards everything", t, func() {
		var e nopEngine
		So(e.Insert("k", 1, 1), ShouldBeNil)
		_, ok := e.Lookup("k")
		So(ok, ShouldBeFalse)
		So(e.Erase("k"), ShouldBeFalse)
	})
}

func TestSelectEngine(t *testing.T) {
	Convey("exactly one engine flag must be selected", t, func() {
		_, err := selectEngine(engineChoice{})
		So(err, ShouldNotBeNil)
	})

	Convey("each engine choice constructs without error", t, func() {
		cases := []engineChoice{
			{treap: true},
			{skiplist: true, size: 16},
			{hashtable: true, size: 8},
			{hashtable: true, chained: true, size: 8},
			{splaytree: true},
			{avl: true},
			{lru: true, size: 4},
			{useMap: true},
			{nop: true},
		}
		for _, c := range cases {
			eng, err := selectEngine(c)
			So(err, ShouldBeNil)
			So(eng, ShouldNotBeNil)
		}
	})
}

func TestRunUsageErrors(t *testing.T) {
	Convey("no engine flag and no file is a usage error", t, func() {
		So(run([]string{}), ShouldEqual, 1)
	})

	Convey("two engine flags is a usage error", t, func() {
		So(run([]string{"-treap", "-map", "ops.txt"}), ShouldEqual, 1)
	})

	Convey("an unreadable operations file is an error", t, func() {
		So(run([]string{"-map", "/nonexistent/path/ops.txt"}), ShouldEqual, 1)
	})
}

func TestRunSuccess(t *testing.T) {
	Convey("a well-formed invocation exits 0", t, func() {
		dir := t.TempDir()
		path := filepath.Join(dir, "ops.txt")
		So(os.WriteFile(path, []byte("i a 1\ns a\nd a\n"), 0o644), ShouldBeNil)

		So(run([]string{"-map", path}), ShouldEqual, 0)
	})
}
