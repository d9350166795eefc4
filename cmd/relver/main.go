/*
Command relver applies the relaxed-semver engines to version lists:
mutate a single version, sort/select sets, compute purge sets against a
retention policy, and derive upgrade paths and predecessors.

Version sets are read from stdin, one per line, empty lines ignored.
*/
package main

import (
	"bufio"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/gardener/relver"

	"github.com/jessevdk/go-flags"
)

type globalOptions struct {
	LogLevel string `long:"log-level" description:"Log verbosity" choice:"debug" choice:"info" choice:"warn" choice:"error" default:"warn"`
}

var global globalOptions

type processCmd struct {
	Operation           string `short:"o" long:"op" description:"Operation to apply" choice:"noop" choice:"bump-major" choice:"bump-minor" choice:"bump-patch" choice:"set-prerelease" choice:"append-prerelease" choice:"set-build-metadata" choice:"set-prerelease-and-build" choice:"set-verbatim" default:"noop"`
	Prerelease          string `short:"p" long:"prerelease"            description:"Prerelease component for set/append operations"`
	BuildMetadata       string `short:"b" long:"build-metadata"        description:"Build metadata for set operations"`
	BuildMetadataLength int    `short:"l" long:"build-metadata-length" description:"Truncate build metadata to this length" default:"12"`
	Verbatim            string `long:"verbatim"                        description:"Output for the set-verbatim operation"`
	SkipPatchZero       bool   `long:"skip-patchlevel-zero"            description:"Bump a resulting patch level of 0 to 1"`

	Args struct {
		Version string `positional-arg-name:"version" description:"Version to process" required:"yes"`
	} `positional-args:"yes"`
}

func (c *processCmd) Execute([]string) error {
	op, ok := relver.ParseOp(c.Operation)
	if !ok {
		return fmt.Errorf("unknown operation %q", c.Operation)
	}

	out, err := relver.Process(c.Args.Version, op, relver.ProcessOptions{
		Prerelease:          c.Prerelease,
		BuildMetadata:       c.BuildMetadata,
		BuildMetadataLength: c.BuildMetadataLength,
		Verbatim:            c.Verbatim,
		SkipPatchlevelZero:  c.SkipPatchZero,
	})
	if err != nil {
		return err
	}

	fmt.Println(out)

	return nil
}

type sortCmd struct {
	Order    string `short:"S" long:"order" description:"Sort order" choice:"asc" choice:"desc" default:"asc"`
	Limit    int    `short:"n" long:"limit" description:"Max number of output versions (<=0 = unlimited)" default:"0"`
	Greatest bool   `short:"g" long:"greatest" description:"Print only the greatest version"`
	Smallest bool   `short:"s" long:"smallest" description:"Print only the smallest version"`
}

func (c *sortCmd) Execute([]string) error {
	in, err := readVersions()
	if err != nil {
		return err
	}

	if c.Greatest && c.Smallest {
		return errors.New("--greatest and --smallest are mutually exclusive")
	}

	if c.Greatest || c.Smallest {
		pick := relver.Greatest
		if c.Smallest {
			pick = relver.Smallest
		}

		out, err := pick(in)
		if err != nil {
			return err
		}
		fmt.Println(out)

		return nil
	}

	for _, v := range relver.SortN(in, relver.ParseSort(c.Order), c.Limit) {
		fmt.Println(v)
	}

	return nil
}

type purgeCmd struct {
	Policy    string `short:"f" long:"policy"    description:"Retention policy YAML file" required:"yes"`
	Reference string `short:"r" long:"reference" description:"Reference version for same-minor restrictions" required:"yes"`
}

func (c *purgeCmd) Execute([]string) error {
	in, err := readVersions()
	if err != nil {
		return err
	}

	data, err := os.ReadFile(c.Policy)
	if err != nil {
		return fmt.Errorf("read policy: %w", err)
	}

	policies, err := relver.LoadPolicies(data)
	if err != nil {
		return err
	}

	purge, err := relver.VersionsToPurge(in, c.Reference, policies, nil)
	if err != nil {
		return err
	}

	for _, v := range purge {
		fmt.Println(v)
	}

	return nil
}

type upgradePathCmd struct {
	From string `short:"F" long:"from" description:"Version upgrading from" required:"yes"`
	To   string `short:"T" long:"to"   description:"Version upgrading to"   required:"yes"`
}

func (c *upgradePathCmd) Execute([]string) error {
	in, err := readVersions()
	if err != nil {
		return err
	}

	path, err := relver.UpgradePath(c.From, c.To, in)
	if err != nil {
		return err
	}

	for _, v := range path {
		fmt.Println(v)
	}

	return nil
}

type predecessorCmd struct {
	Args struct {
		Version string `positional-arg-name:"version" description:"Version to find the predecessor of" required:"yes"`
	} `positional-args:"yes"`
}

func (c *predecessorCmd) Execute([]string) error {
	in, err := readVersions()
	if err != nil {
		return err
	}

	pred, ok, err := relver.FindPredecessor(c.Args.Version, in)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("no version smaller than %s", c.Args.Version)
	}

	fmt.Println(pred)

	return nil
}

// readVersions reads versions from stdin line by line, skipping empty lines.
func readVersions() ([]string, error) {
	in := make([]string, 0, 1024)
	sc := bufio.NewScanner(os.Stdin)
	const maxLine = 10 * 1024 * 1024
	buf := make([]byte, 0, 64*1024)
	sc.Buffer(buf, maxLine)

	for sc.Scan() {
		if s := strings.TrimSpace(sc.Text()); s != "" {
			in = append(in, s)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}

	return in, nil
}

func setupLogging(level string) {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "info":
		lvl = slog.LevelInfo
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelWarn
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})))
}

func main() {
	parser := flags.NewParser(&global, flags.Default)
	parser.LongDescription = `relver — relaxed-semver version toolbox.
Parses versions under a permissive grammar (v-prefix, X.Y shorthand, leading
zeroes), mutates them, sorts version sets, computes retention purge sets,
and derives upgrade paths and predecessors. Version sets are read from
stdin, one per line.`

	parser.CommandHandler = func(cmd flags.Commander, args []string) error {
		setupLogging(global.LogLevel)
		return cmd.Execute(args)
	}

	mustAdd := func(name, short, long string, cmd any) {
		if _, err := parser.AddCommand(name, short, long, cmd); err != nil {
			fmt.Fprintf(os.Stderr, "add command %s: %v\n", name, err)
			os.Exit(2)
		}
	}

	mustAdd("process", "Apply an operation to a version",
		"Apply a named operation (noop, bumps, prerelease/build edits, verbatim) to a single version, preserving a leading 'v'.",
		&processCmd{})
	mustAdd("sort", "Sort a version set",
		"Sort versions from stdin by semver precedence (lexicographic fallback when any line is unparseable), or pick the greatest/smallest.",
		&sortCmd{})
	mustAdd("purge", "Compute versions to purge",
		"Partition versions from stdin by a YAML retention policy and print the versions to discard, smallest first per rule.",
		&purgeCmd{})
	mustAdd("upgrade-path", "Compute an upgrade path",
		"Print the representative intermediate versions between --from and --to, collapsing skipped majors/minors to one entry each.",
		&upgradePathCmd{})
	mustAdd("predecessor", "Find the closest smaller version",
		"Print the closest smaller version from stdin under minor-version-group semantics.",
		&predecessorCmd{})

	if _, err := parser.Parse(); err != nil {
		var flagErr *flags.Error
		if errors.As(err, &flagErr) {
			if flagErr.Type == flags.ErrHelp {
				os.Exit(0)
			}
			os.Exit(1)
		}

		fmt.Fprintln(os.Stderr, "relver:", err)
		os.Exit(1)
	}
}
