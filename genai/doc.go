// Package genai is the client for the Picsart GenAI API. Its single
// operation, text to image, is asynchronous on the wire: the submit call
// returns an inference id and the client polls the inference endpoint until
// generation reports DONE, then returns the generated images.
package genai
