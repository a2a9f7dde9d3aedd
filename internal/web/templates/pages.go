package templates

import (
	"github.com/a-h/templ"
)

// Landing renders the marketing home page with the hero and signup form
func Landing() templ.Component {
	return page("TokenTide - AI Content for Crypto Projects", `
<section class="max-w-6xl mx-auto px-4 py-24 text-center">
  <h1 class="text-5xl font-bold mb-6">Ride the wave of <span class="text-sky-400">crypto content</span></h1>
  <p class="text-xl text-slate-400 max-w-2xl mx-auto mb-10">
    Generate tweets, announcements, narratives, and hashtags for your token in seconds.
    Upload your whitepaper and let the tide do the writing.
  </p>
  <form id="subscribe-form" class="flex justify-center gap-3 max-w-md mx-auto"
        onsubmit="subscribe(event)">
    <input type="email" name="email" required placeholder="you@project.xyz"
           class="flex-1 rounded-lg bg-slate-900 border border-slate-700 px-4 py-3 text-sm">
    <button type="submit" class="rounded-lg bg-sky-500 hover:bg-sky-400 px-6 py-3 font-semibold text-sm">
      Get updates
    </button>
  </form>
  <p id="subscribe-result" class="mt-4 text-sm text-slate-400"></p>
</section>
<section class="max-w-6xl mx-auto px-4 grid md:grid-cols-3 gap-8">
  <div class="rounded-xl border border-slate-800 p-6">
    <h3 class="font-semibold mb-2">📣 Announcements</h3>
    <p class="text-sm text-slate-400">Professional community updates grounded in your docs.</p>
  </div>
  <div class="rounded-xl border border-slate-800 p-6">
    <h3 class="font-semibold mb-2">🐦 Tweets</h3>
    <p class="text-sm text-slate-400">Punchy, on-tone posts with your call to action baked in.</p>
  </div>
  <div class="rounded-xl border border-slate-800 p-6">
    <h3 class="font-semibold mb-2">#️⃣ Hashtags</h3>
    <p class="text-sm text-slate-400">Discoverable tags matched to your niche and audience.</p>
  </div>
</section>
<script>
async function subscribe(e) {
  e.preventDefault();
  const form = e.target;
  const result = document.getElementById('subscribe-result');
  const res = await fetch('/api/subscribe', {
    method: 'POST',
    headers: {'Content-Type': 'application/json'},
    body: JSON.stringify({email: form.email.value, source: 'landing'})
  });
  const data = await res.json();
  result.textContent = data.message || data.error;
}
</script>`)
}

// Features renders the feature overview page
func Features() templ.Component {
	return page("Features - TokenTide", `
<section class="max-w-4xl mx-auto px-4 py-16">
  <h1 class="text-4xl font-bold mb-10">Everything your token needs to be heard</h1>
  <div class="space-y-8">
    <div>
      <h2 class="text-2xl font-semibold mb-2">Document-grounded generation</h2>
      <p class="text-slate-400">Upload your whitepaper or docs and every piece of content is
      written strictly from what they say. Oversized documents are summarized automatically.</p>
    </div>
    <div>
      <h2 class="text-2xl font-semibold mb-2">Five content formats</h2>
      <p class="text-slate-400">Tweets, community announcements, crypto narratives, hashtag sets,
      and meme captions, each with its own specialist prompt.</p>
    </div>
    <div>
      <h2 class="text-2xl font-semibold mb-2">Tone, audience, and CTA controls</h2>
      <p class="text-slate-400">Dial in the voice, point the content at the right audience, and
      end every piece with the call to action you choose.</p>
    </div>
    <div>
      <h2 class="text-2xl font-semibold mb-2">Save what works</h2>
      <p class="text-slate-400">Keep your best generations in the dashboard and track your
      recent activity at a glance.</p>
    </div>
  </div>
</section>`)
}

// Pricing renders the pricing page
func Pricing() templ.Component {
	return page("Pricing - TokenTide", `
<section class="max-w-5xl mx-auto px-4 py-16">
  <h1 class="text-4xl font-bold mb-10 text-center">Simple pricing</h1>
  <div class="grid md:grid-cols-3 gap-8">
    <div class="rounded-xl border border-slate-800 p-8">
      <h2 class="text-xl font-semibold mb-1">Drift</h2>
      <p class="text-3xl font-bold mb-4">$0<span class="text-base text-slate-400">/mo</span></p>
      <ul class="text-sm text-slate-400 space-y-2">
        <li>20 generations per month</li>
        <li>All content formats</li>
        <li>Community support</li>
      </ul>
    </div>
    <div class="rounded-xl border border-sky-500 p-8">
      <h2 class="text-xl font-semibold mb-1">Current</h2>
      <p class="text-3xl font-bold mb-4">$29<span class="text-base text-slate-400">/mo</span></p>
      <ul class="text-sm text-slate-400 space-y-2">
        <li>Unlimited generations</li>
        <li>Document upload and summarization</li>
        <li>Saved content library</li>
      </ul>
    </div>
    <div class="rounded-xl border border-slate-800 p-8">
      <h2 class="text-xl font-semibold mb-1">Tsunami</h2>
      <p class="text-3xl font-bold mb-4">$99<span class="text-base text-slate-400">/mo</span></p>
      <ul class="text-sm text-slate-400 space-y-2">
        <li>Everything in Current</li>
        <li>Team seats</li>
        <li>Priority support</li>
      </ul>
    </div>
  </div>
</section>`)
}

// About renders the about page
func About() templ.Component {
	return page("About - TokenTide", `
<section class="max-w-3xl mx-auto px-4 py-16">
  <h1 class="text-4xl font-bold mb-6">About TokenTide</h1>
  <p class="text-slate-400 leading-relaxed mb-4">
    TokenTide started as an internal tool for keeping a token community posted without
    burning a marketer's whole week. It turned out other projects wanted the same thing.
  </p>
  <p class="text-slate-400 leading-relaxed">
    We believe the story of a project lives in its documentation. Our generator reads what
    you actually built and turns it into content your community actually reads.
  </p>
</section>`)
}

// Login renders the sign-in page with email and OAuth options
func Login() templ.Component {
	return page("Sign in - TokenTide", `
<section class="max-w-sm mx-auto px-4 py-20">
  <h1 class="text-3xl font-bold mb-8 text-center">Welcome back</h1>
  <form onsubmit="login(event)" class="space-y-4">
    <input type="email" name="email" required placeholder="Email"
           class="w-full rounded-lg bg-slate-900 border border-slate-700 px-4 py-3 text-sm">
    <input type="password" name="password" required placeholder="Password"
           class="w-full rounded-lg bg-slate-900 border border-slate-700 px-4 py-3 text-sm">
    <button type="submit" class="w-full rounded-lg bg-sky-500 hover:bg-sky-400 px-4 py-3 font-semibold text-sm">
      Sign in
    </button>
  </form>
  <p id="login-result" class="mt-3 text-sm text-rose-400"></p>
  <div class="mt-6 space-y-3">
    <a href="/api/auth/google" class="block text-center rounded-lg border border-slate-700 px-4 py-3 text-sm hover:bg-slate-900">Continue with Google</a>
    <a href="/api/auth/github" class="block text-center rounded-lg border border-slate-700 px-4 py-3 text-sm hover:bg-slate-900">Continue with GitHub</a>
  </div>
</section>
<script>
async function login(e) {
  e.preventDefault();
  const form = e.target;
  const res = await fetch('/api/auth/login', {
    method: 'POST',
    headers: {'Content-Type': 'application/json'},
    body: JSON.stringify({email: form.email.value, password: form.password.value})
  });
  if (res.ok) {
    window.location.href = '/dashboard';
  } else {
    const data = await res.json();
    document.getElementById('login-result').textContent = data.error || 'Sign in failed';
  }
}
</script>`)
}
