// Package figma is a client for the Figma REST API.
//
// # Endpoints
//
//   - GET /files/:key ([Client.File], [Client.Raw])
//   - GET /files/:key/nodes ([Client.Nodes])
//   - GET /files/:key/variables/local ([Client.Variables])
//   - GET /files/:key/comments ([Client.Comments])
//
// Responses are decoded into [node.Node] trees without a schema, then the
// few fields figscope needs are lifted into [File] and [Variables].
//
// # Authentication
//
// Every request carries the personal access token in X-Figma-Token.
// Password-protected files additionally need [Client.Unlock], which posts
// the password to the web app's check_password endpoint and keeps the
// session cookie for later requests.
//
// # Errors
//
// Failures are returned as coded errors from pkg/errors (NOT_FOUND,
// UNAUTHORIZED, FORBIDDEN, RATE_LIMITED, TIMEOUT, NETWORK_ERROR,
// PASSWORD_REJECTED). Context cancellation is passed through unchanged.
//
// [node.Node]: github.com/matzehuels/figscope/pkg/core/node.Node
package figma
