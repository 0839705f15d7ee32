package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime/pprof"
	"time"

	"golang.org/x/net/html"

	"github.com/go-gumbo/gumbo"
	"github.com/go-gumbo/gumbo/gumboc"
	"github.com/go-gumbo/gumbo/nethtml"
	"github.com/go-gumbo/gumbo/soup"
)

const usage = `gumbo-flame - Profile the HTML parsing pipeline and view flamegraphs

Usage:
  gumbo-flame [options] <html-file>

Options:
  -iterations int    Number of parsing iterations (default: 2000)
  -port int          HTTP server port (default: 8080)
  -profile string    Profile type: cpu, mem (default: cpu)
  -stage string      Pipeline stage to profile: parse, convert, full, net
                     (default: full)
  -help              Show this help message

Stages:
  parse      native parse and destroy only; isolates the library call
  convert    parse and materialize the owned tree
  full       parse, materialize and serialize
  net        parse, materialize an x/net/html tree and render it

This command will:
1. Generate a profile by running the chosen stage repeatedly
2. Serve it through the pprof web interface (flamegraph view included)
3. Keep the server running until you press Ctrl+C

Examples:
  gumbo-flame sample.html                  # CPU flamegraph on port 8080
  gumbo-flame -profile mem sample.html     # Memory flamegraph
  gumbo-flame -stage parse sample.html     # Native call cost only
  gumbo-flame -port 9090 sample.html       # Use a different port
`

func main() {
	var (
		iterations = flag.Int("iterations", 2000, "Number of parsing iterations")
		port       = flag.Int("port", 8080, "HTTP server port")
		profile    = flag.String("profile", "cpu", "Profile type: cpu, mem")
		stage      = flag.String("stage", "full", "Pipeline stage: parse, convert, full, net")
		help       = flag.Bool("help", false, "Show help message")
	)

	flag.Parse()

	if *help {
		fmt.Print(usage)
		os.Exit(0)
	}

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Error: HTML file argument required\n\n")
		fmt.Print(usage)
		os.Exit(1)
	}

	htmlFile := flag.Arg(0)
	if _, err := os.Stat(htmlFile); os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "Error: HTML file does not exist: %s\n", htmlFile)
		os.Exit(1)
	}

	if *profile != "cpu" && *profile != "mem" {
		fmt.Fprintf(os.Stderr, "Error: profile must be 'cpu' or 'mem'\n")
		os.Exit(1)
	}

	step, err := pipeline(*stage)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := generateAndViewProfile(htmlFile, *iterations, *port, *profile, *stage, step); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// pipeline picks the unit of work a profiling iteration runs. Each
// stage includes everything before it, so comparing two stages shows
// what the difference between them costs.
func pipeline(stage string) (func([]byte) error, error) {
	switch stage {
	case "parse":
		return func(data []byte) error {
			res, err := gumboc.Parse(data)
			if err != nil {
				return err
			}
			return res.Close()
		}, nil
	case "convert":
		return func(data []byte) error {
			_, err := gumbo.Parse(data)
			return err
		}, nil
	case "full":
		var d soup.Dumper
		return func(data []byte) error {
			doc, err := gumbo.Parse(data)
			if err != nil {
				return err
			}
			return d.DumpDoc(io.Discard, doc)
		}, nil
	case "net":
		return func(data []byte) error {
			doc, err := nethtml.Parse(data)
			if err != nil {
				return err
			}
			return html.Render(io.Discard, doc)
		}, nil
	}
	return nil, fmt.Errorf("unsupported stage: %s", stage)
}

func generateAndViewProfile(htmlFile string, iterations, port int, profileType, stage string, step func([]byte) error) error {
	fmt.Printf("🔥 Gumbo Flamegraph Generator\n")
	fmt.Printf("HTML file: %s\n", htmlFile)
	fmt.Printf("Profile type: %s\n", profileType)
	fmt.Printf("Pipeline stage: %s\n", stage)
	fmt.Printf("Iterations: %d\n", iterations)
	fmt.Printf("Server port: %d\n\n", port)

	htmlData, err := os.ReadFile(htmlFile)
	if err != nil {
		return fmt.Errorf("failed to read HTML file: %w", err)
	}

	profileFile := fmt.Sprintf("gumbo_%s_%s.prof", stage, profileType)

	fmt.Printf("📊 Generating %s profile...\n", profileType)
	if profileType == "mem" {
		err = generateMemProfile(htmlData, iterations, profileFile)
	} else {
		err = generateCPUProfile(htmlData, iterations, profileFile, step)
	}
	if err != nil {
		return fmt.Errorf("failed to generate profile: %w", err)
	}
	fmt.Printf("✅ Profile generated: %s\n\n", profileFile)

	return startPprofServer(profileFile, port)
}

func generateCPUProfile(htmlData []byte, iterations int, profileFile string, step func([]byte) error) error {
	f, err := os.Create(profileFile)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := pprof.StartCPUProfile(f); err != nil {
		return err
	}
	defer pprof.StopCPUProfile()

	for i := range iterations {
		if err := step(htmlData); err != nil {
			return fmt.Errorf("iteration %d failed: %w", i, err)
		}
	}
	return nil
}

// generateMemProfile keeps every converted document alive so the heap
// profile shows what a materialized tree costs. The stage flag does not
// apply here; the tree is the thing being measured.
func generateMemProfile(htmlData []byte, iterations int, profileFile string) error {
	var docs []*soup.Document
	for range iterations {
		doc, err := gumbo.Parse(htmlData)
		if err != nil {
			return fmt.Errorf("parse failed: %w", err)
		}
		docs = append(docs, doc)
	}

	f, err := os.Create(profileFile)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := pprof.WriteHeapProfile(f); err != nil {
		return err
	}

	_ = len(docs)
	return nil
}

func openBrowser(url string) error {
	var cmd *exec.Cmd
	switch {
	case commandExists("xdg-open"): // Linux
		cmd = exec.Command("xdg-open", url)
	case commandExists("open"): // macOS
		cmd = exec.Command("open", url)
	case commandExists("cmd"): // Windows
		cmd = exec.Command("cmd", "/c", "start", url)
	default:
		return fmt.Errorf("no suitable browser opener found")
	}
	return cmd.Start()
}

func commandExists(cmd string) bool {
	_, err := exec.LookPath(cmd)
	return err == nil
}

func startPprofServer(profileFile string, port int) error {
	fmt.Printf("🌐 Starting pprof server on port %d...\n", port)

	url := fmt.Sprintf("http://localhost:%d/ui/flamegraph", port)
	cmd := exec.Command("go", "tool", "pprof", "-http", fmt.Sprintf(":%d", port), profileFile)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start pprof server: %w", err)
	}

	// give the server a moment before pointing a browser at it
	time.Sleep(2 * time.Second)

	if err := openBrowser(url); err != nil {
		fmt.Printf("⚠️  Could not open browser automatically. Please open: %s\n", url)
	} else {
		fmt.Printf("✨ Browser opened! The flamegraph should appear shortly.\n")
	}

	fmt.Printf("\n📋 Instructions:\n")
	fmt.Printf("   • Flamegraph view: %s\n", url)
	fmt.Printf("   • Press Ctrl+C to stop the server when done\n\n")

	return cmd.Wait()
}
