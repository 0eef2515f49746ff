package sentry

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"os"
	"os/exec"
	"runtime"
	"time"

	"github.com/google/uuid"

	serrors "github.com/amkisko/sex-cli/internal/errors"
)

const (
	oauthAuthorizeURL = "https://sentry.io/oauth/authorize"
	oauthRedirectURI  = "http://localhost:8123/callback"
	oauthListenAddr   = "127.0.0.1:8123"
	oauthScopes       = "org:read project:read team:read member:read"
	oauthTimeout      = 120 * time.Second
)

// The authorization response arrives in the URL fragment, which never
// reaches the server. This page forwards the fragment parameters to the
// /token endpoint where the CLI can read them.
const callbackPage = `<html>
<body>
<h1>Waiting for authentication...</h1>
<script>
function handleAuth() {
	const hash = window.location.hash;
	if (!hash) {
		document.body.innerHTML = '<h1>Error</h1><p>No authentication data received. Please try again.</p>';
		return;
	}
	const params = new URLSearchParams(hash.substring(1));
	const token = params.get('access_token');
	if (!token) {
		document.body.innerHTML = '<h1>Error</h1><p>No access token found. Please try again.</p>';
		return;
	}
	window.location.href = '/token?access_token=' + encodeURIComponent(token) +
		'&state=' + encodeURIComponent(params.get('state') || '');
}
handleAuth();
</script>
</body>
</html>`

const successPage = `<html><body><h1>Successfully authenticated!</h1>
<p>You can close this window and return to the CLI.</p></body></html>`

// clientID reads the OAuth application id from the environment.
func clientID() (string, error) {
	id := os.Getenv("SENTRY_CLIENT_ID")
	if id == "" {
		return "", fmt.Errorf("SENTRY_CLIENT_ID environment variable not set")
	}
	return id, nil
}

// authorizeURL builds the implicit-grant authorization URL.
func authorizeURL(id, state string) string {
	query := url.Values{}
	query.Set("client_id", id)
	query.Set("response_type", "token")
	query.Set("redirect_uri", oauthRedirectURI)
	query.Set("scope", oauthScopes)
	query.Set("state", state)
	return oauthAuthorizeURL + "?" + query.Encode()
}

// callbackMux routes the two requests of the browser flow: /callback
// serves the fragment-forwarding page, /token receives the access token.
// Tokens whose state does not match the expected nonce are dropped.
func callbackMux(state string, tokens chan<- string) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/callback", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		fmt.Fprint(w, callbackPage)
	})
	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		token := r.URL.Query().Get("access_token")
		if token == "" || r.URL.Query().Get("state") != state {
			http.Error(w, "invalid authentication response", http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "text/html")
		fmt.Fprint(w, successPage)
		select {
		case tokens <- token:
		default:
		}
	})
	return mux
}

// LoginWithBrowser runs the implicit-grant OAuth flow: it starts a loopback
// listener, opens the system browser on the authorization page, and waits
// up to two minutes for the token to come back. On success the client is
// left authenticated and the token is returned for the caller to persist.
func (c *Client) LoginWithBrowser() (string, error) {
	id, err := clientID()
	if err != nil {
		return "", err
	}

	listener, err := net.Listen("tcp", oauthListenAddr)
	if err != nil {
		return "", fmt.Errorf("failed to start OAuth callback listener on %s: %w", oauthListenAddr, err)
	}

	state := uuid.NewString()
	tokens := make(chan string, 1)
	server := &http.Server{Handler: callbackMux(state, tokens)}
	go func() {
		// Serve returns ErrServerClosed on shutdown; nothing to do either way.
		_ = server.Serve(listener)
	}()
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = server.Shutdown(ctx)
	}()

	browseURL := authorizeURL(id, state)
	if err := openBrowser(browseURL); err != nil {
		fmt.Println("If the browser doesn't open automatically, please visit:")
		fmt.Println(browseURL)
	}

	select {
	case token := <-tokens:
		c.authToken = token
		return token, nil
	case <-time.After(oauthTimeout):
		return "", serrors.ErrLoginTimeout
	}
}

// openBrowser launches the platform's URL handler.
func openBrowser(target string) error {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", target).Start()
	case "windows":
		return exec.Command("cmd", "/C", "start", target).Start()
	default:
		return exec.Command("xdg-open", target).Start()
	}
}
