// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines the HTTP route table using Go 1.22+ method routing.

Routes:

	GET    /health
	POST   /surveys/validate                 validation verdict, stateless
	POST   /surveys/hash                     verdict + hash + CBOR, stateless
	POST   /surveys                          validate, hash, and store
	GET    /surveys/{hash}                   stored definition
	GET    /surveys/{hash}/metadata          display metadata envelope
	DELETE /surveys/{hash}                   curator key required
	POST   /surveys/{hash}/responses         validate and store a response
	GET    /surveys/{hash}/responses/count   accepted-response count

Literal segments (/surveys/validate, /surveys/hash) take precedence over the
{hash} wildcard under net/http routing, so the stateless endpoints never
shadow stored-survey lookups.
*/
package router
