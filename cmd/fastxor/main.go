// Command fastxor reports which XOR kernel the host gets, and XORs files.
//
//	fastxor info
//	fastxor apply --src key.bin --dst data.bin
package main

import (
	"log"
	"os"

	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"github.com/templexxx/fastxor"
)

// VERSION is set by build flags for release binaries.
var VERSION = "SELFBUILD"

func main() {
	if VERSION == "SELFBUILD" {
		log.SetFlags(log.LstdFlags | log.Lshortfile)
	}

	app := cli.NewApp()
	app.Name = "fastxor"
	app.Usage = "XOR byte streams with the fastest kernel the CPU has"
	app.Version = VERSION
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:   "noavx2",
			Usage:  "don't use AVX2 even if the CPU has it",
			EnvVar: "FASTXOR_NOAVX2",
		},
		cli.BoolFlag{
			Name:   "nosse2",
			Usage:  "don't use SSE2 even if the CPU has it",
			EnvVar: "FASTXOR_NOSSE2",
		},
		cli.BoolFlag{
			Name:   "no64",
			Usage:  "use 32bit words even in a 64bit process",
			EnvVar: "FASTXOR_NO64",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "info",
			Usage: "print detected CPU features and the selected kernel",
			Action: func(c *cli.Context) error {
				p := prober(c)
				f := p.Features()
				log.Printf("avx2: %v, sse2: %v, 64bit: %v", f.HasAVX2, f.HasSSE2, f.Is64Bit)
				log.Println("kernel:", fastxor.New(p).Kernel())
				return nil
			},
		},
		{
			Name:  "apply",
			Usage: "XOR --src into --dst in place, both files must have the same size",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "src",
					Usage: "file XORed into dst, left unchanged",
				},
				cli.StringFlag{
					Name:  "dst",
					Usage: "file rewritten with dst ^ src",
				},
			},
			Action: func(c *cli.Context) error {
				src, dst := c.String("src"), c.String("dst")
				if src == "" || dst == "" {
					return errors.New("both --src and --dst are required")
				}
				d := fastxor.New(prober(c))
				if err := applyFile(d, src, dst); err != nil {
					return err
				}
				log.Printf("xor %s into %s with %s", src, dst, d.Kernel())
				return nil
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatalf("%+v", err)
	}
}

// prober masks the host features turned off by global flags.
func prober(c *cli.Context) fastxor.Prober {
	return fastxor.Mask(fastxor.HostProber, fastxor.Features{
		HasAVX2: c.GlobalBool("noavx2"),
		HasSSE2: c.GlobalBool("nosse2"),
		Is64Bit: c.GlobalBool("no64"),
	})
}
