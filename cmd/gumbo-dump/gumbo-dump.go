package main

import (
	"fmt"
	"io"
	"os"

	"github.com/jessevdk/go-flags"
	"golang.org/x/net/html"

	"github.com/go-gumbo/gumbo"
	"github.com/go-gumbo/gumbo/encoding"
	"github.com/go-gumbo/gumbo/gumboc"
	"github.com/go-gumbo/gumbo/internal/cliutil"
	"github.com/go-gumbo/gumbo/nethtml"
	"github.com/go-gumbo/gumbo/soup"
)

type cmdopts struct {
	Encoding         string `long:"encoding" description:"charset of the input, or 'auto' to sniff it"`
	TabStop          int    `long:"tab-stop" default:"8" description:"tab size used for source positions"`
	StopOnFirstError bool   `long:"stop-on-first-error" description:"stop parsing at the first error"`
	Net              bool   `long:"net" description:"render through the x/net/html adapter"`
	CountErrors      bool   `long:"count-errors" description:"print the parse error count instead of the document"`
	Version          bool   `long:"version"`
}

func main() {
	os.Exit(_main())
}

func showVersion() {
	fmt.Printf("gumbo-dump: using gumbo version %s\n", gumbo.Version)
}

func showUsage() {
	fmt.Printf(`Usage : gumbo-dump [options] HTMLfiles ...
	Parse the HTML files and dump the resulting document tree
	--version : display the version of the HTML library used
`)
}

func _main() int {
	opts := cmdopts{}
	args, err := flags.ParseArgs(&opts, os.Args[1:])
	if err != nil {
		showUsage()
		return 1
	}

	if opts.Version {
		showVersion()
		return 0
	}

	inputCh := make(chan io.Reader)
	// buffered so the producer can report a failed open and still close
	// inputCh while the main loop is draining it
	errCh := make(chan error, 1)
	switch {
	case len(args) > 0: // filename present
		go func() {
			defer close(inputCh)
			for _, f := range args {
				fh, err := os.Open(f)
				if err != nil {
					errCh <- err
					return
				}
				inputCh <- fh
			}
		}()
	case !cliutil.IsTty(os.Stdin.Fd()):
		go func() {
			defer close(inputCh)
			inputCh <- os.Stdin
		}()
	default:
		showUsage()
		return 1
	}

	for in := range inputCh {
		buf, err := io.ReadAll(in)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s\n", err)
			return 1
		}
		if c, ok := in.(io.Closer); ok && in != os.Stdin {
			c.Close()
		}

		if err := dump(os.Stdout, buf, &opts); err != nil {
			fmt.Fprintf(os.Stderr, "%s\n", err)
			return 1
		}
	}

	select {
	case err := <-errCh:
		fmt.Fprintf(os.Stderr, "%s", err)
		return 1
	default:
	}

	return 0
}

func parseOptions(buf []byte, opts *cmdopts) []gumboc.ParseOption {
	popts := []gumboc.ParseOption{
		gumboc.WithTabStop(opts.TabStop),
	}
	if opts.StopOnFirstError {
		popts = append(popts, gumboc.WithStopOnFirstError(true))
	}
	switch opts.Encoding {
	case "", "utf-8", "utf8":
		// input is already what the parser expects
	case "auto":
		if name, ok := encoding.Sniff(buf); ok {
			popts = append(popts, gumboc.WithInputEncoding(name))
		}
	default:
		popts = append(popts, gumboc.WithInputEncoding(opts.Encoding))
	}
	return popts
}

func dump(out io.Writer, buf []byte, opts *cmdopts) error {
	popts := parseOptions(buf, opts)

	switch {
	case opts.CountErrors:
		res, err := gumboc.Parse(buf, popts...)
		if err != nil {
			return err
		}
		defer res.Close()
		fmt.Fprintf(out, "%d\n", res.ErrorCount())
	case opts.Net:
		doc, err := nethtml.Parse(buf, popts...)
		if err != nil {
			return err
		}
		if err := html.Render(out, doc); err != nil {
			return err
		}
		fmt.Fprintln(out)
	default:
		doc, err := gumbo.Parse(buf, popts...)
		if err != nil {
			return err
		}
		d := soup.Dumper{}
		if err := d.DumpDoc(out, doc); err != nil {
			return err
		}
	}
	return nil
}
