package prng

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestSource(t *testing.T) {
	Convey("New", t, func() {
		Convey("same seed produces the same sequence", func() {
			a := New(42)
			b := New(42)
			for i := 0; i < 10; i++ {
				So(a.Float64(), ShouldEqual, b.Float64())
			}
		})

		Convey("different seeds diverge", func() {
			a := New(1)
			b := New(2)
			same := true
			for i := 0; i < 10; i++ {
				if a.Float64() != b.Float64() {
					same = false
				}
			}
			So(same, ShouldBeFalse)
		})
	})

	Convey("Fixed", t, func() {
		s := Fixed(0.75)
		So(s.Float64(), ShouldEqual, 0.75)
		So(s.Float64(), ShouldEqual, 0.75)
		So(s.Intn(10), ShouldEqual, 0)
	})

	Convey("Sequence", t, func() {
		s := Sequence(0.1, 0.2, 0.3)
		So(s.Float64(), ShouldEqual, 0.1)
		So(s.Float64(), ShouldEqual, 0.2)
		So(s.Float64(), ShouldEqual, 0.3)
		Convey("repeats the last value once exhausted", func() {
			So(s.Float64(), ShouldEqual, 0.3)
			So(s.Float64(), ShouldEqual, 0.3)
		})
	})
}
