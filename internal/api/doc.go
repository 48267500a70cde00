// Package api handles incoming HTTP requests: the placeholder routes, the
// cross-origin policy and the generated API documentation. Response
// formatting lives in the shared subpackage.
package api
