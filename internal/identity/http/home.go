package http

import "net/http"

const homePage = `<html>
  <head>
    <title>Identity API</title>
    <style>
      body { font-family: Arial, sans-serif; padding: 2rem; background-color: #f8f9fa; }
      h1 { color: #333; }
      ul { padding-left: 1rem; }
      li { margin-bottom: 0.5rem; }
      code { background-color: #eee; padding: 2px 4px; border-radius: 3px; }
    </style>
  </head>
  <body>
    <h1>Identity API</h1>
    <p>A lightweight authentication and organisation membership API.</p>
    <p>It supports user registration, login, JWT-based sessions, and basic organisation management.</p>

    <h2>Available Endpoints</h2>
    <ul>
      <li><strong>POST</strong> <code>/auth/register</code> - Register a new user and create default organisation</li>
      <li><strong>POST</strong> <code>/auth/login</code> - Log in and receive a session token</li>
      <li><strong>GET</strong> <code>/api/users/{id}</code> - Retrieve a user profile</li>
      <li><strong>GET</strong> <code>/api/organisations</code> - List the caller's organisations <em>(bearer token required)</em></li>
      <li><strong>GET</strong> <code>/api/organisations/{orgId}</code> - Get organisation details <em>(bearer token required)</em></li>
      <li><strong>POST</strong> <code>/api/organisations</code> - Create a new organisation <em>(bearer token required)</em></li>
      <li><strong>POST</strong> <code>/api/organisations/{orgId}/users</code> - Add a user to an organisation</li>
    </ul>
  </body>
</html>
`

// HomeHandler serves the static informational index page.
func HomeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(homePage))
	}
}
