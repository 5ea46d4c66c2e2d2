package cli

import (
	"fmt"
	"io"
)

var bannerArt = []string{
	".................................................",
	".#####...#####...######..##...##..######...####..",
	".##..##..##..##....##....###.###..##......##.....",
	".#####...#####.....##....##.#.##..####.....####..",
	".##......##..##....##....##...##..##..........##.",
	".##......##..##..######..##...##..######...####..",
	".................................................",
}

const bannerTagline = "Nth Prime Solver O-Matic Online..\nGuaranteed to find primes up to 2 million in under 30 seconds!"

// PrintBanner writes the PRIME banner and tagline to out.
func PrintBanner(out io.Writer) {
	last := len(bannerArt) - 1
	for i, line := range bannerArt {
		if i == last {
			fmt.Fprintf(out, "%s%s%s\n\n\n", ColorCyan(), line, ColorReset())
			continue
		}
		fmt.Fprintf(out, "%s%s%s\n", ColorCyan(), line, ColorReset())
	}
	fmt.Fprintf(out, "%s%s%s\n\n\n", ColorBold(), bannerTagline, ColorReset())
}
