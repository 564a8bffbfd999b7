/*
Package api implements the asynchronous long-running-operation protocol
shared by every Picsart Creative APIs operation.

It contains the four pieces the image and genai clients are composed from:

  - Transport: issues single GET/POST requests (JSON or multipart form) with
    a per-call timeout, returning a RawResponse with status, headers and body.
  - Classify: inspects a completed response; 2xx passes the body through,
    anything else becomes a typed *types.ResponseError carrying the parsed
    detail message and the response Metadata.
  - Poll: repeatedly issues a status check until a terminal predicate matches
    or the repeat budget is exhausted.
  - Validate: evaluates a request's declarative field rules before any
    network call and aggregates every violation into one error.
*/
package api
