// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /health", middleware.WithLogging(handler))

Logs request start (method, path, remote) and completion (status, duration_ms).

# CORS Middleware

Enable cross-origin reads for frontend access:

	server := http.Server{
		Handler: middleware.CORS(mux),
	}

Allows GET and OPTIONS and exposes Content-Disposition so browsers can name
downloaded files.

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusNotFound, "message")

# Downloads

Mark a response as an attachment before streaming it:

	middleware.DownloadHeaders(w, "text/csv; charset=utf-8", "votes.csv")
*/
package middleware
