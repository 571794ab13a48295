// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"

	"github.com/MKhiriev/go-blog/internal/adapter"
	"github.com/MKhiriev/go-blog/models"
)

const usage = `usage: go-blog-client <command> [flags]

commands:
  signup       -name -email -password -gender
  login        -email -password
  me
  user         <id>
  posts        [-user-id] [-limit] [-offset]
  post         <id>
  create-post  -title -body
  update-post  <id> [-title] [-body]
  delete-post  <id>
  version      server build information
  build        client build information

Protected commands read the token from ADAPTER_TOKEN. signup and login
print a token to export.`

var errUsage = errors.New("invalid usage")

type cli struct {
	api adapter.BlogAPI
	out io.Writer
}

func (c *cli) run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(c.out, usage)
		return errUsage
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "signup":
		return c.signup(ctx, rest)
	case "login":
		return c.login(ctx, rest)
	case "me":
		return c.print(c.api.Me(ctx))
	case "user":
		id, err := positionalID(rest)
		if err != nil {
			return err
		}
		return c.print(c.api.GetUser(ctx, id))
	case "posts":
		return c.listPosts(ctx, rest)
	case "post":
		id, err := positionalID(rest)
		if err != nil {
			return err
		}
		return c.print(c.api.GetPost(ctx, id))
	case "create-post":
		return c.createPost(ctx, rest)
	case "update-post":
		return c.updatePost(ctx, rest)
	case "delete-post":
		id, err := positionalID(rest)
		if err != nil {
			return err
		}
		if err = c.api.DeletePost(ctx, id); err != nil {
			return err
		}
		fmt.Fprintf(c.out, "post %d deleted\n", id)
		return nil
	case "version":
		return c.print(c.api.Version(ctx))
	case "build":
		printBuildInfo()
		return nil
	case "help", "-h", "--help":
		fmt.Fprintln(c.out, usage)
		return nil
	default:
		fmt.Fprintln(c.out, usage)
		return fmt.Errorf("%w: unknown command %q", errUsage, cmd)
	}
}

func (c *cli) signup(ctx context.Context, args []string) error {
	var req models.SignupRequest
	var gender string

	fs := c.flagSet("signup")
	fs.StringVar(&req.Name, "name", "", "display name")
	fs.StringVar(&req.Email, "email", "", "email address")
	fs.StringVar(&req.Password, "password", "", "password")
	fs.StringVar(&gender, "gender", "", "male or female")
	if err := fs.Parse(args); err != nil {
		return err
	}
	req.Gender = models.Gender(gender)

	return c.printAuth(c.api.Signup(ctx, req))
}

func (c *cli) login(ctx context.Context, args []string) error {
	var req models.LoginRequest

	fs := c.flagSet("login")
	fs.StringVar(&req.Email, "email", "", "email address")
	fs.StringVar(&req.Password, "password", "", "password")
	if err := fs.Parse(args); err != nil {
		return err
	}

	return c.printAuth(c.api.Login(ctx, req))
}

func (c *cli) listPosts(ctx context.Context, args []string) error {
	var req models.ListPostsRequest

	fs := c.flagSet("posts")
	fs.Int64Var(&req.UserID, "user-id", 0, "only posts by this user")
	fs.Uint64Var(&req.Limit, "limit", 0, "page size")
	fs.Uint64Var(&req.Offset, "offset", 0, "posts to skip")
	if err := fs.Parse(args); err != nil {
		return err
	}

	posts, err := c.api.ListPosts(ctx, req)
	if err != nil {
		return err
	}
	if posts == nil {
		posts = []models.Post{}
	}
	return c.printJSON(posts)
}

func (c *cli) createPost(ctx context.Context, args []string) error {
	var req models.CreatePostRequest

	fs := c.flagSet("create-post")
	fs.StringVar(&req.Title, "title", "", "post title")
	fs.StringVar(&req.Body, "body", "", "post body")
	if err := fs.Parse(args); err != nil {
		return err
	}

	return c.print(c.api.CreatePost(ctx, req))
}

// updatePost sends only the flags that were given on the command line.
func (c *cli) updatePost(ctx context.Context, args []string) error {
	id, err := positionalID(args)
	if err != nil {
		return err
	}

	var title, body string
	fs := c.flagSet("update-post")
	fs.StringVar(&title, "title", "", "new title")
	fs.StringVar(&body, "body", "", "new body")
	if err = fs.Parse(args[1:]); err != nil {
		return err
	}

	var req models.UpdatePostRequest
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "title":
			req.Title = &title
		case "body":
			req.Body = &body
		}
	})

	return c.print(c.api.UpdatePost(ctx, id, req))
}

func (c *cli) flagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(c.out)
	return fs
}

func (c *cli) printAuth(result models.AuthResult, err error) error {
	if err != nil {
		return err
	}
	if err = c.printJSON(result.User); err != nil {
		return err
	}
	fmt.Fprintf(c.out, "export ADAPTER_TOKEN=%s\n", result.Token)
	return nil
}

func (c *cli) print(v any, err error) error {
	if err != nil {
		return err
	}
	return c.printJSON(v)
}

func (c *cli) printJSON(v any) error {
	enc := json.NewEncoder(c.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func positionalID(args []string) (int64, error) {
	if len(args) == 0 {
		return 0, fmt.Errorf("%w: id is required", errUsage)
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: id must be a positive integer, got %q", errUsage, args[0])
	}
	return id, nil
}
