// Package main enables optdump to execute as a CLI tool
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/gookit/color"
	"golang.org/x/term"

	"github.com/optmodel/optmodel/options"
	"github.com/optmodel/optmodel/parsers"
)

// Color functions used when printing option values
var (
	ColorLightCyan = color.LightCyan.Printf
	ColorCyan      = color.Cyan.Printf
	ColorGreen     = color.Green.Printf
	ColorYellow    = color.Yellow.Printf
	ColorRed       = color.Red.Printf
)

// warner adapts the colored printer to the options.Logger sink.
type warner struct{}

func (warner) Warnf(format string, args ...any) {
	ColorRed(format+"\n", args...)
}

// declared holds the external variables bound to located options.
type declared struct {
	interfaceName string
	useIPv4       bool
	noColor       bool
}

// declareGroups builds the option surface of optdump.
func declareGroups(vars *declared) []*options.Group {
	probe := options.NewGroup("probe options").Add(
		options.New[string]("protocol").WithShortName("p").WithDefault("tcp").
			WithOneOf("tcp", "udp", "http").WithHelp("probe protocol to use"),
		options.New[float64]("interval").WithShortName("i").WithDefault(1).
			WithHelp("seconds to wait between sending probes"),
		options.New[float64]("timeout").WithShortName("t").WithDefault(1).
			WithHelp("seconds to wait for a response"),
		options.New[uint32]("count").WithShortName("c").
			WithHelp("number of probes to send before exiting"),
		options.New[int32]("ttl").WithDefault(64).
			WithHelp("time to live for outgoing packets"),
		options.NewLocated("use-ipv4", &vars.useIPv4).WithShortName("4").
			WithHelp("only use IPv4 addresses"),
	)

	output := options.NewGroup("output options").Add(
		options.NewLocated("interface", &vars.interfaceName).WithShortName("I").
			WithHelp("interface name to send probes from"),
		options.New[[]string]("nameserver").
			WithHelp("nameservers used to resolve the target"),
		options.NewLocated("no-color", &vars.noColor).
			WithHelp("do not colorize output"),
		options.New[bool]("help").WithShortName("h").
			WithHelp("show this help and exit"),
		options.New[uint64]("seq-start").WithHiddenFromHelp().
			WithHelp("first sequence number to report"),
	)

	return []*options.Group{probe, output}
}

// helpPrinter renders one usage line per visible option.
type helpPrinter struct{}

func (helpPrinter) VisitUint32(o *options.TypedOption[uint32])        { printHelpLine(o) }
func (helpPrinter) VisitUint64(o *options.TypedOption[uint64])        { printHelpLine(o) }
func (helpPrinter) VisitInt32(o *options.TypedOption[int32])          { printHelpLine(o) }
func (helpPrinter) VisitInt64(o *options.TypedOption[int64])          { printHelpLine(o) }
func (helpPrinter) VisitFloat64(o *options.TypedOption[float64])      { printHelpLine(o) }
func (helpPrinter) VisitBool(o *options.TypedOption[bool])            { printHelpLine(o) }
func (helpPrinter) VisitString(o *options.TypedOption[string])        { printHelpLine(o) }
func (helpPrinter) VisitStringSlice(o *options.TypedOption[[]string]) { printHelpLine(o) }

// printHelpLine writes the usage line for an option, skipping hidden ones.
func printHelpLine[T options.ValueType](o *options.TypedOption[T]) {
	if o.HiddenFromHelp {
		return
	}

	flags := "--" + o.Name
	if o.ShortName != "" {
		flags += ", -" + o.ShortName
	}

	line := fmt.Sprintf("  %-20s : %s", flags, o.Help)
	if def, err := o.DefaultValue(); err == nil {
		line += fmt.Sprintf(" (default %v)", def)
	}
	if choices := o.OneOf(); len(choices) > 0 {
		line += fmt.Sprintf(" (one of %v)", choices)
	}
	ColorYellow("%s\n", line)
}

// usage prints how optdump should be run
func usage(groups []*options.Group) {
	executableName := os.Args[0]

	ColorLightCyan("\nDump the resolved value of every declared option\n")
	ColorRed("\nTry running %s like:\n", executableName)
	ColorRed("%s --protocol udp --count 3 example.com\n", executableName)

	printer := helpPrinter{}
	for _, group := range groups {
		ColorYellow("\n[%s]\n", group.Name)
		for _, opt := range group.Options {
			opt.Accept(printer)
		}
	}

	os.Exit(1)
}

// dumpPrinter prints the resolved state of each option it visits.
type dumpPrinter struct {
	parser *parsers.CLIParser
}

func (d dumpPrinter) VisitUint32(o *options.TypedOption[uint32])        { printResolved(d.parser, o) }
func (d dumpPrinter) VisitUint64(o *options.TypedOption[uint64])        { printResolved(d.parser, o) }
func (d dumpPrinter) VisitInt32(o *options.TypedOption[int32])          { printResolved(d.parser, o) }
func (d dumpPrinter) VisitInt64(o *options.TypedOption[int64])          { printResolved(d.parser, o) }
func (d dumpPrinter) VisitFloat64(o *options.TypedOption[float64])      { printResolved(d.parser, o) }
func (d dumpPrinter) VisitBool(o *options.TypedOption[bool])            { printResolved(d.parser, o) }
func (d dumpPrinter) VisitString(o *options.TypedOption[string])        { printResolved(d.parser, o) }
func (d dumpPrinter) VisitStringSlice(o *options.TypedOption[[]string]) { printResolved(d.parser, o) }

// printResolved shows an option's value: green when explicitly supplied,
// yellow when it came from a default, a dash when unset.
func printResolved[T options.ValueType](p *parsers.CLIParser, o *options.TypedOption[T]) {
	v, err := o.Value()
	switch {
	case err != nil:
		fmt.Printf("  --%-18s -\n", o.Name)
	case p.WasSupplied(o.Name):
		ColorGreen("  --%-18s %v\n", o.Name, v)
	default:
		ColorYellow("  --%-18s %v (default)\n", o.Name, v)
	}

	if o.OneOfError != "" {
		ColorRed("  %s\n", o.OneOfError)
	}
}

func main() {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		color.Disable()
	}

	vars := &declared{}
	groups := declareGroups(vars)

	parser := parsers.NewCLIParser(os.Args[1:])
	for _, group := range groups {
		if err := parser.AddAndParse(group); err != nil {
			ColorRed("%s\n", err)
			os.Exit(1)
		}
	}

	if vars.noColor {
		color.Disable()
	}
	if parser.WasSupplied("help") {
		usage(groups)
	}
	if err := parser.CheckUnregistered(warner{}); err != nil {
		usage(groups)
	}

	printer := dumpPrinter{parser: parser}
	for _, group := range groups {
		ColorCyan("[%s]\n", group.Name)
		for _, opt := range group.Options {
			opt.Accept(printer)
		}
	}

	if positional := parser.PositionalTokens(); len(positional) > 0 {
		ColorCyan("[positional tokens]\n")
		fmt.Printf("  %s\n", strings.Join(positional, " "))
	}

	family := "IPv4 and IPv6"
	if vars.useIPv4 {
		family = "IPv4 only"
	}
	if vars.interfaceName != "" {
		fmt.Printf("\nprobes would use %s from interface %s\n", family, vars.interfaceName)
	} else {
		fmt.Printf("\nprobes would use %s\n", family)
	}
}
