package server

import "net/http"

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(indexHTML))
}

// indexHTML is the resize harness: both charts reload at the new
// window width whenever the browser edge stops moving.
const indexHTML = `<!doctype html>
<html>
<head>
<meta charset="utf-8">
<title>pillar preview</title>
<style>
  body { margin: 2rem auto; max-width: 96vw; font-family: sans-serif; color: #333; }
  h1 { font-size: 1rem; font-weight: 600; }
  img { display: block; width: 100%; }
  footer { margin-top: 2rem; font-size: 0.8rem; color: #888; }
</style>
</head>
<body>
<section>
  <h1>bar</h1>
  <img id="bar" alt="bar chart">
</section>
<section>
  <h1>timeline</h1>
  <img id="timeline" alt="timeline chart">
</section>
<footer>resize the window to re-render</footer>
<script>
  const heights = { bar: 360, timeline: 300 };
  function reload() {
    const width = Math.round(document.body.clientWidth);
    for (const kind of ["bar", "timeline"]) {
      const img = document.getElementById(kind);
      img.src = "/chart/" + kind + "?width=" + width + "&height=" + heights[kind] + "&t=" + Date.now();
      img.style.height = heights[kind] + "px";
    }
  }
  let pending = null;
  window.addEventListener("resize", () => {
    clearTimeout(pending);
    pending = setTimeout(reload, 150);
  });
  reload();
</script>
</body>
</html>
`
