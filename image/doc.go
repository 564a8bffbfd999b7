/*
Package image is the client for the Picsart Image API: background removal,
effects, upscaling, enhancement, adjustment, texture generation, surface
mapping, upload and balance.

Most operations are synchronous POSTs. Ultra upscale is a long-running
operation: a 200 submit response already carries the final result, a 202
response carries a transaction id that is polled until the result endpoint
answers 200.

The API type is the user-facing façade; Client speaks the wire protocol and
can be reused across derived API values.
*/
package image
