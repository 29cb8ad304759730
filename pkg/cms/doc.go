// Package cms provides types, interfaces, and helpers for working with the
// Inkwell content-management API gateway.
//
// # Overview
//
// The cms package defines the domain types (Content, Asset, Schema), the
// fluent query builder that compiles filter/sort/paging intents into the
// gateway's OData-style query options, and the typed error taxonomy the SDK
// raises. A concrete implementation of the client interfaces is provided by
// the cmsclient package, which wires configuration, transport, and
// authentication. Most consumers should import cmsclient to construct a
// client and then interact with the resource interfaces exposed here.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/inkwell-io/cms-client/pkg/cms"
//	  "github.com/inkwell-io/cms-client/pkg/cmsclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := cmsclient.New(ctx, &cms.Config{Endpoint: "https://cloud.inkwell.io"})
//	  if err != nil { log.Fatal(err) }
//
//	  exercises, err := cli.Contents().List(ctx, "exercises",
//	    cms.NewQuery().Equals("data/difficulty/iv", "easy").Top(20))
//	  if err != nil { log.Fatal(err) }
//	  _ = exercises
//	}
//
// # Queries
//
// Query accumulates clauses through chained calls and compiles them with
// Build (or ToValues for the wire form). Clauses join with " and " in call
// order; OrderBy, Top, Skip, and Search are last-write-wins:
//
//	q := cms.NewQuery().
//	    Equals("data/difficulty/iv", "easy").
//	    Contains("data/title/iv", "math").
//	    OrderBy("created", cms.SortDescending).
//	    Top(20).Skip(5).
//	    Search("algebra")
//
// String operands are not escaped against embedded single quotes; sanitizing
// untrusted input is the caller's responsibility.
//
// # Errors
//
// Failed calls raise *Error, a tagged union discriminated by Kind. Callers
// branch on the kind, either through the predicates (IsNotFound, IsAuth,
// IsValidation, IsRateLimit) or by matching Kind directly:
//
//	_, err := cli.Contents().Get(ctx, "exercises", id)
//	if cms.IsNotFound(err) {
//	  // terminal, never retried internally
//	}
//
// The transport retries retryable failures (connection errors, 429, and
// retryable 5xx) with exponential backoff before the error reaches the
// caller.
package cms
