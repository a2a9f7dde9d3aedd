package templates

import (
	"fmt"
	"strings"

	"github.com/a-h/templ"

	"github.com/tokentide/tokentide-api/internal/models"
)

// Dashboard renders the authenticated generator workspace
func Dashboard(user *models.User, activity []models.ActivityLog) templ.Component {
	name := user.Name
	if name == "" {
		name = user.Email
	}

	body := fmt.Sprintf(`
<section class="max-w-6xl mx-auto px-4 py-10">
  <h1 class="text-3xl font-bold mb-8">Welcome, %s</h1>
  <div class="grid lg:grid-cols-2 gap-10">
    <div>
      <h2 class="text-xl font-semibold mb-4">Generate content</h2>
      <form onsubmit="generate(event)" class="space-y-4">
        <select name="contentType" class="w-full rounded-lg bg-slate-900 border border-slate-700 px-4 py-3 text-sm">
          <option value="tweet">Tweets</option>
          <option value="announcement">Announcements</option>
          <option value="narrative">Narratives</option>
          <option value="hashtag">Hashtags</option>
          <option value="meme">Meme captions</option>
        </select>
        <input name="tokenName" placeholder="Token name"
               class="w-full rounded-lg bg-slate-900 border border-slate-700 px-4 py-3 text-sm">
        <input name="niche" placeholder="Niche (e.g. DeFi, GameFi)"
               class="w-full rounded-lg bg-slate-900 border border-slate-700 px-4 py-3 text-sm">
        <input name="contentIdea" placeholder="Content idea (optional)"
               class="w-full rounded-lg bg-slate-900 border border-slate-700 px-4 py-3 text-sm">
        <input name="targetAudience" placeholder="Target audience (optional)"
               class="w-full rounded-lg bg-slate-900 border border-slate-700 px-4 py-3 text-sm">
        <div class="flex gap-4">
          <input name="tone" placeholder="Tone (optional)"
                 class="flex-1 rounded-lg bg-slate-900 border border-slate-700 px-4 py-3 text-sm">
          <input name="cta" placeholder="Call to action (optional)"
                 class="flex-1 rounded-lg bg-slate-900 border border-slate-700 px-4 py-3 text-sm">
        </div>
        <textarea name="documentContent" rows="5" placeholder="Paste project documentation (optional)"
                  class="w-full rounded-lg bg-slate-900 border border-slate-700 px-4 py-3 text-sm"></textarea>
        <button type="submit" class="rounded-lg bg-sky-500 hover:bg-sky-400 px-6 py-3 font-semibold text-sm">
          Generate
        </button>
      </form>
      <div id="results" class="mt-6 space-y-3"></div>
    </div>
    <div>
      <h2 class="text-xl font-semibold mb-4">Recent activity</h2>
      %s
    </div>
  </div>
</section>
<script>
async function generate(e) {
  e.preventDefault();
  const form = e.target;
  const payload = {};
  for (const field of ['contentType','tokenName','niche','contentIdea','targetAudience','tone','cta','documentContent']) {
    if (form[field].value) payload[field] = form[field].value;
  }
  const results = document.getElementById('results');
  results.innerHTML = '<p class="text-slate-400 text-sm">Generating…</p>';
  const res = await fetch('/api/v1/generate', {
    method: 'POST',
    headers: {'Content-Type': 'application/json'},
    body: JSON.stringify(payload)
  });
  const data = await res.json();
  if (!res.ok) {
    results.innerHTML = '<p class="text-rose-400 text-sm">' + (data.error || 'Generation failed') + '</p>';
    return;
  }
  results.innerHTML = data.items.map(item =>
    '<div class="rounded-lg border border-slate-800 p-4 text-sm">' +
    (item.imageUrl ? '<img src="' + item.imageUrl + '" class="rounded mb-2" alt="">' : '') +
    '<p></p></div>'
  ).join('');
  results.querySelectorAll('p').forEach((p, i) => { p.textContent = data.items[i].content; });
}
</script>`, templ.EscapeString(name), activityTable(activity))

	return page("Dashboard - TokenTide", body)
}

func activityTable(activity []models.ActivityLog) string {
	if len(activity) == 0 {
		return `<p class="text-sm text-slate-500">No generations yet. Your runs will show up here.</p>`
	}

	var b strings.Builder
	b.WriteString(`<table class="w-full text-sm text-left">
<thead class="text-slate-500"><tr>
<th class="py-2">Type</th><th class="py-2">Token</th><th class="py-2">Items</th><th class="py-2">When</th>
</tr></thead><tbody>`)

	for _, entry := range activity {
		fmt.Fprintf(&b, `<tr class="border-t border-slate-800">
<td class="py-2">%s</td><td class="py-2">%s</td><td class="py-2">%d</td><td class="py-2 text-slate-500">%s</td>
</tr>`,
			templ.EscapeString(entry.ContentType),
			templ.EscapeString(entry.TokenName),
			entry.ItemCount,
			entry.CreatedAt.Format("Jan 2 15:04"),
		)
	}

	b.WriteString(`</tbody></table>`)
	return b.String()
}
