// Package idc synthesizes the copper geometry of an interdigitated (comb)
// capacitor.
//
// # Overview
//
// Two combs of parallel fingers interleave without touching. Each comb is
// closed by its own bus bar, and every finger alternates between the two
// electrically distinct nets ([NetA] and [NetB]). [Synthesize] turns a small
// [Parameters] record into a [Layout]: an ordered list of rectangular
// [Segment] values, each tagged with its net.
//
// # Geometry
//
// Fingers are vertical strips and bus bars are horizontal strips. With
// T = track width, G = gap, C = connecting track width, W = total width and
// N = finger count:
//
//	pitch         P = T + G
//	finger length L = W - 2C - G
//	comb span     S = N*P - G
//
//	y = W   +---------------- bar B ----------------+
//	        |    |B|       |B|       |B|            |
//	        |    | |  |A|  | |  |A|  | |            |
//	        |    | |  | |  | |  | |  | |     ...    |
//	        |    |A|  | |  |A|  | |  |A|            |
//	y = 0   +---------------- bar A ----------------+
//	        x = 0                                   x = S
//
// Net A fingers start on bar A and stop one gap short of bar B; net B
// fingers hang from bar B and stop one gap short of bar A.
//
// # Usage
//
//	l, err := idc.Synthesize(idc.Parameters{
//	    TrackWidth: 0.8,
//	    Gap:        0.5,
//	    TotalWidth: 15,
//	    NumFingers: 40,
//	})
//	if err != nil {
//	    // err is an *errors.InvalidParameterError
//	}
//	for _, s := range l.Segments() {
//	    fmt.Println(s.Net, s.X, s.Y, s.Width, s.Height)
//	}
//
// Synthesize is a pure function: it performs no I/O and keeps no state, so
// identical parameters always produce identical layouts.
package idc
