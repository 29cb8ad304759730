// Package cmsclient provides the primary entry point for constructing a
// client that implements the cms.Client interface.
//
// It layers configuration, HTTP transport, authentication, and auth endpoint
// discovery on top of the resource interfaces and types defined in the cms
// package. Most applications should import cmsclient to build a client, then
// use the returned cms.Client to access the resource clients Contents(),
// Assets(), and Schemas().
//
// Quick start
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
//
//	  // Minimal: just a gateway endpoint (no auth).
//	  cli, err := cmsclient.New(ctx, &cms.Config{Endpoint: "https://cloud.inkwell.io"})
//	  if err != nil { log.Fatal(err) }
//
//	  // Or with an access token you already have:
//	  cli, err = cmsclient.NewWithToken(ctx, "https://cloud.inkwell.io", "eyJhbGciOi...")
//
//	  // Or with client credentials. When credentials are provided and no
//	  // token URL is set, cmsclient discovers the auth service from the
//	  // gateway root ("/" → links.auth) and sets TokenURL automatically.
//	  cli, err = cmsclient.NewWithClientCredentials(ctx,
//	    "https://cloud.inkwell.io", "my-client", "my-secret")
//
//	  _ = cli
//	}
package cmsclient
