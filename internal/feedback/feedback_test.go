package feedback

import (
	"errors"
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/ncruces/zenity"
	"github.com/smartystreets/goconvey/convey"
)

func TestTickStreamer(t *testing.T) {
	convey.Convey("Given a 40ms tick at 44.1kHz", t, func() {
		tick := newTick(defaultSampleRate, 880, tickDuration)
		want := defaultSampleRate.N(tickDuration)

		convey.Convey("It streams exactly its length and then stops", func() {
			buf := make([][2]float64, 512)
			total := 0
			peak := 0.0
			for {
				n, ok := tick.Stream(buf)
				if !ok {
					break
				}
				for _, s := range buf[:n] {
					peak = math.Max(peak, math.Abs(s[0]))
					convey.So(s[0], convey.ShouldEqual, s[1])
				}
				total += n
			}
			convey.So(total, convey.ShouldEqual, want)
			convey.So(peak, convey.ShouldBeGreaterThan, 0)
			convey.So(peak, convey.ShouldBeLessThanOrEqualTo, tickVolume)
			convey.So(tick.Err(), convey.ShouldBeNil)
		})

		convey.Convey("It decays towards silence", func() {
			buf := make([][2]float64, want)
			n, _ := tick.Stream(buf)
			convey.So(n, convey.ShouldEqual, want)

			head, tail := 0.0, 0.0
			for i := 0; i < n/5; i++ {
				head = math.Max(head, math.Abs(buf[i][0]))
				tail = math.Max(tail, math.Abs(buf[n-1-i][0]))
			}
			convey.So(tail, convey.ShouldBeLessThan, head/10)
		})
	})

	convey.Convey("Ring pitches differ", t, func() {
		convey.So(len(tickFrequency), convey.ShouldEqual, 3)
		convey.So(tickFrequency[0], convey.ShouldNotEqual, tickFrequency[1])
	})

	convey.Convey("A zero-length tick stops immediately", t, func() {
		tick := newTick(defaultSampleRate, 880, time.Duration(0))
		n, ok := tick.Stream(make([][2]float64, 8))
		convey.So(n, convey.ShouldEqual, 0)
		convey.So(ok, convey.ShouldBeFalse)
	})
}

func TestDialogResults(t *testing.T) {
	convey.Convey("Given zenity outcomes", t, func() {
		boom := errors.New("no display")

		convey.Convey("An answered entry is returned", func() {
			name, ok, err := entryResult("Cafe", nil)
			convey.So(err, convey.ShouldBeNil)
			convey.So(ok, convey.ShouldBeTrue)
			convey.So(name, convey.ShouldEqual, "Cafe")
		})

		convey.Convey("A cancelled entry is not an error", func() {
			_, ok, err := entryResult("", fmt.Errorf("wrapped: %w", zenity.ErrCanceled))
			convey.So(err, convey.ShouldBeNil)
			convey.So(ok, convey.ShouldBeFalse)
		})

		convey.Convey("Other entry failures are wrapped", func() {
			_, _, err := entryResult("", boom)
			convey.So(errors.Is(err, boom), convey.ShouldBeTrue)
		})

		convey.Convey("Question answers map to yes and no", func() {
			yes, err := questionResult(nil)
			convey.So(err, convey.ShouldBeNil)
			convey.So(yes, convey.ShouldBeTrue)

			yes, err = questionResult(zenity.ErrCanceled)
			convey.So(err, convey.ShouldBeNil)
			convey.So(yes, convey.ShouldBeFalse)

			_, err = questionResult(boom)
			convey.So(errors.Is(err, boom), convey.ShouldBeTrue)
		})
	})
}
