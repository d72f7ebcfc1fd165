// Package codec implements the unpadded base64url text encoding used for
// token segments and other values that must survive URLs and cookie headers
// unescaped.
//
// The round-trip law Decode(Encode(b)) == b holds for every byte string b,
// including the empty string. Decode never panics on hostile input; any
// text outside the alphabet yields ErrMalformedInput.
package codec
