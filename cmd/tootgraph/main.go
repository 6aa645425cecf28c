/*
Copyright 2026 Dima Krasner

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/dimkr/tootgraph/aggregate"
	"github.com/dimkr/tootgraph/as"
	"github.com/dimkr/tootgraph/cfg"
	"github.com/dimkr/tootgraph/creds"
	"github.com/dimkr/tootgraph/logger"
	"github.com/dimkr/tootgraph/resolver"
	"github.com/dimkr/tootgraph/toot"
	"golang.org/x/oauth2"
)

var (
	cfgPath       = flag.String("cfg", "", "configuration file")
	dbPath        = flag.String("db", "", "credentials database path")
	blockListPath = flag.String("blocklist", "", "blocklist CSV path")
	instance      = flag.String("instance", "", "instance URL")
)

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] login|activities|actor|comment|preview|publish|embed [args]\n\nFlags:\n", os.Args[0])
	flag.PrintDefaults()
	fmt.Fprintf(flag.CommandLine.Output(), "\nEnvironment:\n%s", cfg.Usage())
}

func readActivity(path string) (*as.Object, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var activity as.Object
	if err := json.NewDecoder(f).Decode(&activity); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return &activity, nil
}

func login(ctx context.Context, conf *cfg.Config, store *creds.Store, client *http.Client, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	token := fs.String("token", "", "access token")
	fs.Parse(args)

	if conf.InstanceURL == "" || *token == "" {
		return errors.New("instance URL and access token are required")
	}

	c := creds.Credential{Instance: conf.InstanceURL, AccessToken: *token}

	s, err := toot.New(ctx, toot.Options{
		BaseURL: conf.InstanceURL,
		Tokens:  &c,
		Client:  client,
		Config:  conf,
	})
	if err != nil {
		return err
	}

	c.UserID = s.UserID()
	if err := store.Save(ctx, &c); err != nil {
		return err
	}

	slog.Info("Logged in", "instance", conf.InstanceURL, "id", c.UserID, "acct", s.Self.Acct)
	return nil
}

func connect(ctx context.Context, conf *cfg.Config, store *creds.Store, client *http.Client, blockList *resolver.BlockList) (*toot.Source, error) {
	if conf.InstanceURL == "" {
		return nil, errors.New("instance URL is required")
	}

	var tokens oauth2.TokenSource
	userID := conf.UserID
	var saved *creds.Credential

	if conf.AccessToken != "" {
		tokens = oauth2.StaticTokenSource(&oauth2.Token{AccessToken: conf.AccessToken, TokenType: "Bearer"})
	} else if c, err := store.Load(ctx, conf.InstanceURL); err != nil {
		return nil, err
	} else {
		tokens = c
		saved = c
		if userID == "" {
			userID = c.UserID
		}
	}

	s, err := toot.New(ctx, toot.Options{
		BaseURL:   conf.InstanceURL,
		Tokens:    tokens,
		UserID:    userID,
		Client:    client,
		Config:    conf,
		BlockList: blockList,
	})
	if err != nil {
		return nil, err
	}

	if saved != nil && saved.UserID == "" {
		if err := store.SetUserID(ctx, conf.InstanceURL, s.UserID()); err != nil {
			slog.Warn("Failed to cache user ID", "instance", conf.InstanceURL, "error", err)
		}
	}

	return s, nil
}

// parseActivityOptions parses the arguments of the activities command. At most one of
// -self, -friends and -search may be used.
func parseActivityOptions(args []string) (aggregate.Options, error) {
	fs := flag.NewFlagSet("activities", flag.ContinueOnError)
	self := fs.Bool("self", false, "list statuses of a user")
	friends := fs.Bool("friends", false, "list the home timeline")
	userID := fs.String("user", "", "user ID, for -self")
	activityID := fs.String("id", "", "list a single status")
	query := fs.String("search", "", "search query")
	replies := fs.Bool("replies", false, "fetch replies")
	likes := fs.Bool("likes", false, "fetch likes")
	shares := fs.Bool("shares", false, "fetch shares")
	mentions := fs.Bool("mentions", false, "fetch mentions")
	if err := fs.Parse(args); err != nil {
		return aggregate.Options{}, err
	}

	opts := aggregate.Options{
		UserID:        *userID,
		ActivityID:    *activityID,
		SearchQuery:   *query,
		FetchReplies:  *replies,
		FetchLikes:    *likes,
		FetchShares:   *shares,
		FetchMentions: *mentions,
	}

	groups := 0
	if *self {
		opts.Group = aggregate.Self
		groups++
	}
	if *friends {
		opts.Group = aggregate.Friends
		groups++
	}
	if *query != "" {
		opts.Group = aggregate.Search
		groups++
	}

	if groups > 1 {
		return aggregate.Options{}, errors.New("-self, -friends and -search cannot be combined")
	}

	return opts, nil
}

func activities(ctx context.Context, s *toot.Source, args []string) error {
	opts, err := parseActivityOptions(args)
	if err != nil {
		return err
	}

	l, err := s.ListActivities(ctx, opts)
	if err != nil {
		return err
	}

	return writeJSON(os.Stdout, l)
}

func run(ctx context.Context, conf *cfg.Config, args []string) error {
	client := &http.Client{Timeout: conf.RequestTimeout}

	store, err := creds.Open(ctx, conf.CredentialsDB)
	if err != nil {
		return err
	}
	defer store.Close()

	cmd, args := args[0], args[1:]

	if cmd == "login" {
		return login(ctx, conf, store, client, args)
	}

	var blockList *resolver.BlockList
	if conf.BlockList != "" {
		blockList, err = resolver.NewBlockList(slog.Default(), conf.BlockList)
		if err != nil {
			return fmt.Errorf("failed to load blocklist: %w", err)
		}
		defer blockList.Close()
	}

	s, err := connect(ctx, conf, store, client, blockList)
	if err != nil {
		return err
	}

	switch cmd {
	case "activities":
		return activities(ctx, s, args)

	case "actor":
		var id string
		if len(args) > 0 {
			id = args[0]
		}

		actor, err := s.GetActor(ctx, id)
		if err != nil {
			return err
		}

		return writeJSON(os.Stdout, actor)

	case "comment":
		if len(args) != 1 {
			return errors.New("usage: comment ID")
		}

		obj, err := s.GetComment(ctx, args[0])
		if err != nil {
			return err
		}

		return writeJSON(os.Stdout, obj)

	case "preview":
		if len(args) != 1 {
			return errors.New("usage: preview FILE")
		}

		activity, err := readActivity(args[0])
		if err != nil {
			return err
		}

		preview, err := s.Preview(activity)
		if err != nil {
			return err
		}

		return writePreview(os.Stdout, preview)

	case "publish":
		if len(args) != 1 {
			return errors.New("usage: publish FILE")
		}

		activity, err := readActivity(args[0])
		if err != nil {
			return err
		}

		result, err := s.Publish(ctx, activity)
		if err != nil {
			return err
		}

		return writeJSON(os.Stdout, result.Activity)

	case "embed":
		if len(args) != 1 {
			return errors.New("usage: embed URL")
		}

		_, err := fmt.Println(s.EmbedPost(args[0]))
		return err

	default:
		return fmt.Errorf("unknown command: %s", cmd)
	}
}

func main() {
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	conf, err := cfg.Load(*cfgPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if *instance != "" {
		conf.InstanceURL = *instance
	}
	if *dbPath != "" {
		conf.CredentialsDB = *dbPath
	}
	if *blockListPath != "" {
		conf.BlockList = *blockListPath
	}

	log, err := logger.New(os.Stderr, conf.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, conf, flag.Args()); err != nil {
		log.Error("Failed to run "+flag.Arg(0), "error", err)
		stop()
		os.Exit(1)
	}
}
