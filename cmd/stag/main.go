/*
Package main is the stag CLI (Swift TAG resolver).
It resolves a "MAJOR.MINOR" version specifier to the newest matching
Swift toolchain release version, or the "snapshot" token to the latest
development snapshot identifier, and prints the single result.
*/
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/woozymasta/stag"

	"github.com/jessevdk/go-flags"
)

type Options struct {
	// Endpoint selection
	OptionsEndpoint OptionsEndpoint `group:"Endpoint"`
	// Tag shape overrides
	OptionsShape OptionsShape `group:"Tag shape"`

	Positional struct {
		Version string `positional-arg-name:"VERSION" description:"MAJOR.MINOR or 'snapshot'"`
	} `positional-args:"yes"`
}

type OptionsEndpoint struct {
	Repo    string        `short:"r" long:"repo"     description:"GitHub repository to query (owner/name)" default:"apple/swift"`
	APIURL  string        `short:"u" long:"api-url"  description:"GitHub API root URL" default:"https://api.github.com"`
	PerPage int           `short:"n" long:"per-page" description:"Listing page size requested from the API" default:"100"`
	Timeout time.Duration `short:"t" long:"timeout"  description:"Request timeout" default:"30s"`
}

type OptionsShape struct {
	Prefix string `short:"p" long:"prefix" description:"Literal text before the embedded version" default:"swift-"`
	Suffix string `short:"s" long:"suffix" description:"Literal text after the embedded version" default:"-RELEASE"`
	Marker string `short:"m" long:"marker" description:"Development snapshot marker substring" default:"DEVELOPMENT-SNAPSHOT"`
}

func main() {
	var opt Options
	parser := flags.NewParser(&opt, flags.Default|flags.AllowBoolValues)
	parser.LongDescription = `STAG — Swift TAG resolver.
Resolves a version specifier against the tags of a Swift toolchain
repository: "MAJOR.MINOR" picks the release with the highest patch
number in that family, "snapshot" picks the latest development snapshot.`

	rest, err := parser.Parse()
	if err != nil {
		if flagErr, ok := err.(*flags.Error); ok && flagErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opt.Positional.Version == "" || len(rest) > 0 {
		fail(fmt.Errorf("expected exactly one VERSION argument, got %d", argCount(opt.Positional.Version, rest)))
	}

	// Specifier validation happens before any network activity.
	spec, err := stag.ParseSpecifier(opt.Positional.Version)
	if err != nil {
		fail(err)
	}

	client := stag.NewClient(opt.OptionsEndpoint.Repo)
	client.BaseURL = opt.OptionsEndpoint.APIURL
	client.PerPage = opt.OptionsEndpoint.PerPage
	client.HTTP.Timeout = opt.OptionsEndpoint.Timeout

	ctx := context.Background()

	// Snapshots live on the tag listing, numbered versions on releases.
	var tags []string
	if spec.Snapshot {
		tags, err = client.Tags(ctx)
	} else {
		tags, err = client.Releases(ctx)
	}
	if err != nil {
		fail(err)
	}

	out, err := stag.Resolve(tags, spec, stag.Options{
		Prefix:         opt.OptionsShape.Prefix,
		ReleaseSuffix:  opt.OptionsShape.Suffix,
		SnapshotMarker: opt.OptionsShape.Marker,
	})
	if err != nil {
		fail(err)
	}

	fmt.Println(out)
}

func argCount(version string, rest []string) int {
	n := len(rest)
	if version != "" {
		n++
	}

	return n
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
