package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

const pageHead = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>%s</title>
  <script src="https://cdn.tailwindcss.com"></script>
</head>
<body class="bg-slate-950 text-slate-100 min-h-screen">`

const pageNav = `
<nav class="border-b border-slate-800">
  <div class="max-w-6xl mx-auto px-4 py-4 flex items-center justify-between">
    <a href="/" class="text-xl font-bold text-sky-400">🌊 TokenTide</a>
    <div class="flex gap-6 text-sm text-slate-300">
      <a href="/features" class="hover:text-white">Features</a>
      <a href="/pricing" class="hover:text-white">Pricing</a>
      <a href="/about" class="hover:text-white">About</a>
      <a href="/login" class="hover:text-white">Sign in</a>
      <a href="/dashboard" class="text-sky-400 hover:text-sky-300">Dashboard</a>
    </div>
  </div>
</nav>`

const pageFooter = `
<footer class="border-t border-slate-800 mt-16">
  <div class="max-w-6xl mx-auto px-4 py-8 text-sm text-slate-500 flex justify-between">
    <span>© 2026 TokenTide. All rights reserved.</span>
    <span>AI-powered content for crypto projects</span>
  </div>
</footer>
</body>
</html>`

// page wraps body markup with the shared chrome. Body fragments are trusted
// template literals; dynamic values must be escaped by the caller.
func page(title, body string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, pageHead, templ.EscapeString(title)); err != nil {
			return err
		}
		if _, err := io.WriteString(w, pageNav); err != nil {
			return err
		}
		if _, err := io.WriteString(w, body); err != nil {
			return err
		}
		_, err := io.WriteString(w, pageFooter)
		return err
	})
}
