// Command imgconv converts ordinary image files into the compiled
// resource layout consumed by the blit rasterization core, either as raw
// little-endian binary or as embeddable Go source.
package main

import (
	"encoding/binary"
	"fmt"
	"image"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v2"
	_ "golang.org/x/image/bmp"

	"github.com/embgfx/blit"
)

var version = "devel"

var formats = map[string]blit.ColorFormat{
	"truecolor":        blit.FormatTrueColor,
	"chromakey":        blit.FormatTrueColorChromaKeyed,
	"truecolor-alpha":  blit.FormatTrueColorAlpha,
	"indexed1":         blit.FormatIndexed1,
	"indexed2":         blit.FormatIndexed2,
	"indexed4":         blit.FormatIndexed4,
	"indexed8":         blit.FormatIndexed8,
	"alpha1":           blit.FormatAlpha1,
	"alpha2":           blit.FormatAlpha2,
	"alpha4":           blit.FormatAlpha4,
	"alpha8":           blit.FormatAlpha8,
}

func main() {
	app := &cli.App{
		Name:    "imgconv",
		Usage:   "convert images to compiled blit resources",
		Version: version,
		Commands: []*cli.Command{
			{
				Name:      "convert",
				Usage:     "convert an image file to a compiled resource",
				ArgsUsage: "FILE",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "format",
						Aliases: []string{"f"},
						Usage:   "target color format",
						Value:   "truecolor",
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "output file (defaults to input with new extension)",
					},
					&cli.BoolFlag{
						Name:  "go",
						Usage: "emit Go source instead of binary",
					},
					&cli.StringFlag{
						Name:  "package",
						Usage: "package name for Go source output",
						Value: "assets",
					},
				},
				Action: convert,
			},
			{
				Name:      "info",
				Usage:     "describe a compiled binary resource",
				ArgsUsage: "FILE",
				Action:    info,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadResource(path, formatName string) ([]uint16, error) {
	cf, ok := formats[formatName]
	if !ok {
		return nil, fmt.Errorf("unknown format %q", formatName)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	buf, err := blit.FromImage(img, cf)
	if err != nil {
		return nil, err
	}
	return blit.EncodeResource(buf)
}

func convert(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.ShowSubcommandHelp(c)
	}
	path := c.Args().First()

	words, err := loadResource(path, c.String("format"))
	if err != nil {
		return err
	}

	out := c.String("output")
	if out == "" {
		ext := ".bin"
		if c.Bool("go") {
			ext = ".go"
		}
		out = strings.TrimSuffix(path, filepath.Ext(path)) + ext
	}

	if c.Bool("go") {
		return writeGoSource(out, c.String("package"), identFor(path), words)
	}
	return writeBinary(out, words)
}

func writeBinary(path string, words []uint16) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return binary.Write(f, binary.LittleEndian, words)
}

// identFor derives a Go identifier from the input file name.
func identFor(path string) string {
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	var b strings.Builder
	up := true
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			if up {
				b.WriteString(strings.ToUpper(string(r)))
				up = false
			} else {
				b.WriteRune(r)
			}
		default:
			up = true
		}
	}
	if b.Len() == 0 {
		return "Image"
	}
	return "Img" + b.String()
}

func writeGoSource(path, pkg, ident string, words []uint16) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	fmt.Fprintf(f, "// Code generated by imgconv. DO NOT EDIT.\n\npackage %s\n\n", pkg)
	fmt.Fprintf(f, "// %s: %dx%d, depth %d, flags %#x.\n", ident, words[0], words[1], words[2], words[3])
	fmt.Fprintf(f, "var %s = []uint16{\n", ident)
	for i := 0; i < len(words); i += 12 {
		end := min(i+12, len(words))
		fmt.Fprint(f, "\t")
		for j := i; j < end; j++ {
			fmt.Fprintf(f, "%d, ", words[j])
		}
		fmt.Fprintln(f)
	}
	fmt.Fprintln(f, "}")
	return nil
}

func info(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.ShowSubcommandHelp(c)
	}
	raw, err := os.ReadFile(c.Args().First())
	if err != nil {
		return err
	}
	if len(raw)%2 != 0 {
		return fmt.Errorf("%s: odd byte count, not a resource", c.Args().First())
	}
	words := make([]uint16, len(raw)/2)
	for i := range words {
		words[i] = binary.LittleEndian.Uint16(raw[i*2:])
	}

	buf, err := blit.DecodeResource(words)
	if err != nil {
		return err
	}
	hdr := buf.Header()
	fmt.Printf("%dx%d %s flags=%#x (%s source)\n",
		hdr.W, hdr.H, hdr.CF, hdr.Flags, blit.SourceKindOf(buf))
	return nil
}
