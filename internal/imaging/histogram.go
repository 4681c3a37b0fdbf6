package imaging

import (
	"fmt"
	"math"
	"strings"

	"github.com/anthonynsimon/bild/histogram"
)

// Channel selects the quantity counted by Histogram.
type Channel int

const (
	ChannelRed Channel = iota
	ChannelGreen
	ChannelBlue
	// ChannelIntensity is the channel mean (r+g+b)/3 rounded half up.
	ChannelIntensity
)

func (c Channel) String() string {
	switch c {
	case ChannelRed:
		return "red"
	case ChannelGreen:
		return "green"
	case ChannelBlue:
		return "blue"
	case ChannelIntensity:
		return "intensity"
	default:
		return fmt.Sprintf("Channel(%d)", int(c))
	}
}

// ParseChannel maps "red", "green", "blue" or "intensity" (case-insensitive).
func ParseChannel(s string) (Channel, error) {
	switch strings.ToLower(s) {
	case "red":
		return ChannelRed, nil
	case "green":
		return ChannelGreen, nil
	case "blue":
		return ChannelBlue, nil
	case "intensity":
		return ChannelIntensity, nil
	default:
		return 0, fmt.Errorf("%w: unknown channel %q", ErrInvalidArgument, s)
	}
}

// Histogram counts, for each value 0-255, the pixels whose selected
// channel has that value.
func Histogram(img *Image, ch Channel) ([256]int, error) {
	var out [256]int

	switch ch {
	case ChannelRed, ChannelGreen, ChannelBlue:
		h := histogram.NewRGBAHistogram(img.ToNRGBA())
		bins := map[Channel][]int{
			ChannelRed:   h.R.Bins,
			ChannelGreen: h.G.Bins,
			ChannelBlue:  h.B.Bins,
		}[ch]
		copy(out[:], bins)
	case ChannelIntensity:
		for _, row := range img.rows {
			for _, p := range row {
				sum := float64(p.Color.R) + float64(p.Color.G) + float64(p.Color.B)
				out[int(math.Floor(sum/3+0.5))]++
			}
		}
	default:
		return out, fmt.Errorf("%w: unknown channel %d", ErrInvalidArgument, int(ch))
	}
	return out, nil
}
