// SPDX-License-Identifier: MIT

// Package server exposes an lvmath.Math over HTTP.
//
// Routes:
//
//	GET  /healthz            → {"status":"ok"}
//	GET  /config             → the configuration snapshot
//	GET  /functions          → names, signatures and transform availability
//	POST /functions/{name}   ← {"args":[...],"transform":false}
//	                         → {"result": ...}
//
// Arguments and results use the value JSON codec, so BigNumbers, Fractions,
// Complex numbers, matrices and indexes travel as tagged objects. Plain JSON
// numbers are read in the configured number kind.
//
// Status codes:
//
//	400  malformed body, no matching signature, invalid argument
//	404  unknown function
//	422  the call itself failed (empty input, division by zero, ...)
//	500  anything else
package server
