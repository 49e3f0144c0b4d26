package main

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

//go:embed templates
var templatesFS embed.FS

const (
	cookieName  = "market_token"
	defaultPort = "3000"
	defaultAPI  = "http://localhost:8080"
	envWebPort  = "MARKET_WEB_PORT"
	envAPIURL   = "MARKET_API_URL"
)

var tmpl = template.Must(template.ParseFS(templatesFS, "templates/*.html"))

type product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Location    string  `json:"location"`
}

func main() {
	port := getEnv(envWebPort, defaultPort)
	apiBase := getEnv(envAPIURL, defaultAPI)

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})

	// Public
	r.Get("/login", loginForm)
	r.Post("/login", loginSubmit(apiBase))
	r.Post("/signup", signupSubmit(apiBase))
	r.Get("/logout", logout)
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/search", http.StatusFound)
	})
	r.Get("/search", searchPage(apiBase))

	// Requires a token cookie
	r.Group(func(r chi.Router) {
		r.Use(requireAuth)
		r.Get("/products/new", productForm)
		r.Post("/products", productCreate(apiBase))
		r.Get("/cart", cartPage(apiBase))
		r.Post("/cart/add", cartAdd(apiBase))
		r.Post("/cart/checkout", cartCheckout(apiBase))
	})

	log.Printf("Marketplace web UI on http://localhost:%s (API: %s)", port, apiBase)
	if err := http.ListenAndServe(":"+port, r); err != nil {
		log.Fatal(err)
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// requireAuth redirects to /login when the token cookie is missing. Expired
// tokens surface as 401 from the API inside the page handlers.
func requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c, err := r.Cookie(cookieName)
		if err != nil || c.Value == "" {
			http.Redirect(w, r, "/login", http.StatusFound)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func cookieToken(r *http.Request) string {
	c, err := r.Cookie(cookieName)
	if err != nil {
		return ""
	}
	return c.Value
}

func clearAuthAndRedirectToLogin(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{Name: cookieName, Value: "", MaxAge: -1, Path: "/"})
	http.Redirect(w, r, "/login?msg="+url.QueryEscape("Session expired, please sign in again"), http.StatusFound)
}

func render(w http.ResponseWriter, name string, data any) {
	if err := tmpl.ExecuteTemplate(w, name, data); err != nil {
		http.Error(w, "template error", http.StatusInternalServerError)
	}
}

// ==========================
// Auth pages
// ==========================

func loginForm(w http.ResponseWriter, r *http.Request) {
	render(w, "login.html", map[string]string{
		"Msg":   r.URL.Query().Get("msg"),
		"Error": r.URL.Query().Get("error"),
	})
}

func loginSubmit(apiBase string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		form := url.Values{
			"username": {r.FormValue("username")},
			"password": {r.FormValue("password")},
		}
		resp, err := http.PostForm(apiBase+"/signin", form)
		if err != nil {
			http.Error(w, "API unreachable", http.StatusBadGateway)
			return
		}
		defer resp.Body.Close()
		body, _ := io.ReadAll(resp.Body)

		if resp.StatusCode != http.StatusOK {
			render(w, "login.html", map[string]string{"Error": apiErrorMessage(body)})
			return
		}

		var out struct {
			AccessToken string `json:"access_token"`
		}
		if err := json.Unmarshal(body, &out); err != nil || out.AccessToken == "" {
			http.Error(w, "bad API response", http.StatusBadGateway)
			return
		}

		http.SetCookie(w, &http.Cookie{
			Name:     cookieName,
			Value:    out.AccessToken,
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
		http.Redirect(w, r, "/search", http.StatusFound)
	}
}

func signupSubmit(apiBase string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload := map[string]string{
			"username": r.FormValue("username"),
			"password": r.FormValue("password"),
		}
		body, status, err := apiPostJSON(apiBase, "/signup", "", payload)
		if err != nil {
			http.Error(w, "API unreachable", http.StatusBadGateway)
			return
		}
		if status != http.StatusOK {
			render(w, "login.html", map[string]string{"Error": apiErrorMessage(body)})
			return
		}
		http.Redirect(w, r, "/login?msg="+url.QueryEscape("Signup successful, please sign in"), http.StatusFound)
	}
}

func logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{Name: cookieName, Value: "", MaxAge: -1, Path: "/"})
	http.Redirect(w, r, "/login", http.StatusFound)
}

// ==========================
// Product pages
// ==========================

func searchPage(apiBase string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query().Get("q")
		location := r.URL.Query().Get("location")

		params := url.Values{"q": {q}}
		if location != "" {
			params.Set("location", location)
		}

		body, status, err := apiGet(apiBase, "/products/search?"+params.Encode(), "")
		if err != nil || status != http.StatusOK {
			http.Error(w, "API unreachable", http.StatusBadGateway)
			return
		}

		var found []product
		json.Unmarshal(body, &found)

		render(w, "search.html", map[string]any{
			"Products": found,
			"Q":        q,
			"Location": location,
			"LoggedIn": cookieToken(r) != "",
		})
	}
}

func productForm(w http.ResponseWriter, r *http.Request) {
	render(w, "post.html", nil)
}

func productCreate(apiBase string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		price, _ := strconv.ParseFloat(r.FormValue("price"), 64)
		payload := map[string]any{
			"name":        r.FormValue("name"),
			"description": r.FormValue("description"),
			"price":       price,
			"location":    r.FormValue("location"),
		}

		body, status, err := apiPostJSON(apiBase, "/products", cookieToken(r), payload)
		if err != nil {
			http.Error(w, "API unreachable", http.StatusBadGateway)
			return
		}
		if status == http.StatusUnauthorized {
			clearAuthAndRedirectToLogin(w, r)
			return
		}
		if status != http.StatusOK {
			http.Error(w, apiErrorMessage(body), http.StatusBadGateway)
			return
		}
		http.Redirect(w, r, "/search?q="+url.QueryEscape(r.FormValue("name")), http.StatusFound)
	}
}

// ==========================
// Cart pages
// ==========================

func cartPage(apiBase string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, status, err := apiGet(apiBase, "/cart", cookieToken(r))
		if err != nil {
			http.Error(w, "API unreachable", http.StatusBadGateway)
			return
		}
		if status == http.StatusUnauthorized {
			clearAuthAndRedirectToLogin(w, r)
			return
		}

		var items []product
		json.Unmarshal(body, &items)

		var total float64
		for _, p := range items {
			total += p.Price
		}

		render(w, "cart.html", map[string]any{
			"Items": items,
			"Total": fmt.Sprintf("%.2f", total),
		})
	}
}

func cartAdd(apiBase string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload := map[string]string{"product_id": r.FormValue("product_id")}
		_, status, err := apiPostJSON(apiBase, "/cart/add", cookieToken(r), payload)
		if err != nil {
			http.Error(w, "API unreachable", http.StatusBadGateway)
			return
		}
		if status == http.StatusUnauthorized {
			clearAuthAndRedirectToLogin(w, r)
			return
		}
		http.Redirect(w, r, "/cart", http.StatusFound)
	}
}

func cartCheckout(apiBase string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, status, err := apiPostJSON(apiBase, "/cart/checkout", cookieToken(r), nil)
		if err != nil {
			http.Error(w, "API unreachable", http.StatusBadGateway)
			return
		}
		if status == http.StatusUnauthorized {
			clearAuthAndRedirectToLogin(w, r)
			return
		}
		http.Redirect(w, r, "/cart", http.StatusFound)
	}
}

// ==========================
// API helpers
// ==========================

func apiGet(apiBase, path, token string) ([]byte, int, error) {
	req, err := http.NewRequest("GET", apiBase+path, nil)
	if err != nil {
		return nil, 0, err
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	return body, resp.StatusCode, nil
}

func apiPostJSON(apiBase, path, token string, payload any) ([]byte, int, error) {
	var buf bytes.Buffer
	if payload != nil {
		if err := json.NewEncoder(&buf).Encode(payload); err != nil {
			return nil, 0, err
		}
	}
	req, err := http.NewRequest("POST", apiBase+path, &buf)
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	return body, resp.StatusCode, nil
}

// apiErrorMessage pulls the "error" field out of an API error body,
// falling back to the raw body.
func apiErrorMessage(body []byte) string {
	var out struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &out); err == nil && out.Error != "" {
		return out.Error
	}
	return strings.TrimSpace(string(body))
}
