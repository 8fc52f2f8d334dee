package palette

import (
	"image/color"

	clr "github.com/lucasb-eyer/go-colorful"
)

// RampOptions shapes a shade ramp.
type RampOptions struct {
	// Steps is the number of shades; 8 when zero.
	Steps int
	// Spread is the HCL lightness distance from the base to either end of
	// the ramp; 0.3 when zero.
	Spread float64
}

func (o RampOptions) withDefaults() RampOptions {
	if o.Steps < 1 {
		o.Steps = 8
	}
	if o.Spread == 0 {
		o.Spread = 0.3
	}
	return o
}

// Ramp returns opts.Steps shades of base ordered darkest to lightest, with
// base itself in the middle. Merging with ColorOffset k onto a palette built
// from ramps brightens by k shades.
func Ramp(base color.Color, opts RampOptions) color.Palette {
	opts = opts.withDefaults()

	ramp := make(color.Palette, opts.Steps)
	if opts.Steps == 1 {
		c, _ := clr.MakeColor(base)
		ramp[0] = c.Clamped()
		return ramp
	}

	for i := range ramp {
		ramp[i] = shade(base, opts.Spread*(2*float64(i)/float64(opts.Steps-1)-1))
	}
	return ramp
}

// Ramps concatenates a ramp for every color of pal. The shade s of color c
// lands at index c*opts.Steps+s.
func Ramps(pal color.Palette, opts RampOptions) color.Palette {
	opts = opts.withDefaults()
	out := make(color.Palette, 0, len(pal)*opts.Steps)
	for _, c := range pal {
		out = append(out, Ramp(c, opts)...)
	}
	return out
}

// Mix samples ramp at t, where 0 is its darkest shade and 1 its lightest.
// Positions between two shades blend them in Lab; t is clamped to [0, 1].
func Mix(ramp color.Palette, t float64) color.Color {
	switch {
	case len(ramp) == 0:
		return color.Transparent
	case len(ramp) == 1 || t <= 0:
		return ramp[0]
	case t >= 1:
		return ramp[len(ramp)-1]
	}

	pos := t * float64(len(ramp)-1)
	i := int(pos)
	lo, _ := clr.MakeColor(ramp[i])
	hi, _ := clr.MakeColor(ramp[i+1])
	return lo.BlendLab(hi, pos-float64(i)).Clamped()
}

// shade moves src's HCL lightness by p, darker when p is negative.
func shade(src color.Color, p float64) color.Color {
	srcColor, _ := clr.MakeColor(src)
	h, c, l := srcColor.Hcl()
	return clr.Hcl(h, c, l+p).Clamped()
}
