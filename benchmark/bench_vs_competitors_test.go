package benchmark_test

import (
	"testing"

	flags "github.com/jessevdk/go-flags"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/urfave/cli/v2"

	"github.com/dzonerzy/go-cmdline/cmdline"
	cmdlineio "github.com/dzonerzy/go-cmdline/io"
)

// The same invocation parsed by each library. go-cmdline needs no
// declarations; the others declare port, verbose, a and b up front.
var competitorArgs = []string{"--port", "9000", "--verbose", "-ab", "file1", "file2"}

func BenchmarkCompare_GoCmdline(b *testing.B) {
	parser := cmdline.NewParser().
		WithFs(afero.NewMemMapFs()).
		WithLogger(cmdlineio.Discard()).
		SlashPrefix(false)
	argv := append([]string{"bench"}, competitorArgs...)
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = parser.Parse(argv)
	}
}

func BenchmarkCompare_Pflag(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		fs := pflag.NewFlagSet("bench", pflag.ContinueOnError)
		fs.Int("port", 8080, "Server port")
		fs.Bool("verbose", false, "Verbose output")
		fs.BoolP("all", "a", false, "Flag A")
		fs.BoolP("brief", "b", false, "Flag B")
		_ = fs.Parse(competitorArgs)
	}
}

func BenchmarkCompare_Cobra(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		rootCmd := &cobra.Command{
			Use: "bench",
			Run: func(_ *cobra.Command, _ []string) {},
		}
		rootCmd.Flags().Int("port", 8080, "Server port")
		rootCmd.Flags().Bool("verbose", false, "Verbose output")
		rootCmd.Flags().BoolP("all", "a", false, "Flag A")
		rootCmd.Flags().BoolP("brief", "b", false, "Flag B")
		rootCmd.SetArgs(competitorArgs)
		_ = rootCmd.Execute()
	}
}

func BenchmarkCompare_Urfave(b *testing.B) {
	argv := append([]string{"bench"}, competitorArgs...)
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		app := &cli.App{
			Name:                   "bench",
			UseShortOptionHandling: true,
			Flags: []cli.Flag{
				&cli.IntFlag{Name: "port", Value: 8080, Usage: "Server port"},
				&cli.BoolFlag{Name: "verbose", Usage: "Verbose output"},
				&cli.BoolFlag{Name: "a", Usage: "Flag A"},
				&cli.BoolFlag{Name: "b", Usage: "Flag B"},
			},
			Action: func(_ *cli.Context) error { return nil },
		}
		_ = app.Run(argv)
	}
}

func BenchmarkCompare_GoFlags(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		var opts struct {
			Port    int  `long:"port" default:"8080" description:"Server port"`
			Verbose bool `long:"verbose" description:"Verbose output"`
			A       bool `short:"a" description:"Flag A"`
			B       bool `short:"b" description:"Flag B"`
		}
		_, _ = flags.ParseArgs(&opts, competitorArgs)
	}
}
