package httpserver

import "net/http"

// Test upload page. The form posts to /scan and injects the returned
// fragment into the result div.
const indexPage = `<html>
  <head>
    <title>Scanner CV Suisse (Romandie)</title>
    <link href="https://fonts.googleapis.com/css2?family=Inter:wght@400;600;800&display=swap" rel="stylesheet">
    <style>
      body { font-family: 'Inter', sans-serif; max-width: 800px; margin: 40px auto; padding: 20px; background: #f8fafc; color: #333; }
      .container { background: white; padding: 50px; border-radius: 12px; box-shadow: 0 4px 20px rgba(0,0,0,0.06); text-align: center; border: 1px solid #eee; }
      h1 { color: #d90429; letter-spacing: -0.5px; margin-bottom: 10px; font-weight: 800; font-size: 32px; }
      input[type=email] { padding: 14px; width: 100%; max-width: 400px; border: 1px solid #cbd5e1; border-radius: 6px; margin-bottom: 15px; font-size: 16px; }
      input[type=file] { margin-top: 10px; font-size: 14px; background: #f1f5f9; padding: 10px; border-radius: 6px; width: 100%; max-width: 400px; }
      select { padding: 10px; margin-top: 15px; border: 1px solid #cbd5e1; border-radius: 6px; font-size: 14px; width: 100%; max-width: 400px; }
      button { background: #d90429; color: white; padding: 16px 32px; border: none; cursor: pointer; font-size: 16px; margin-top: 25px; border-radius: 6px; font-weight: 600; width: 100%; max-width: 400px; }
      #result { margin-top: 50px; text-align: left; }
    </style>
  </head>
  <body>
    <div class="container">
      <h1>🇨🇭 Scanner CV Suisse</h1>
      <form id="uploadForm">
        <input type="email" name="user_email" placeholder="Email du candidat" required />
        <br>
        <input type="file" name="cv_file" accept=".pdf,.docx" required />
        <br>
        <select name="persona">
          <option value="romandie">Suisse Romande (FR)</option>
          <option value="alemanique">Deutschschweiz (DE)</option>
        </select>
        <br>
        <button type="submit">Lancer l'analyse</button>
      </form>
    </div>
    <div id="result"></div>
    <script>
      const form = document.getElementById('uploadForm');
      const resultDiv = document.getElementById('result');
      form.addEventListener('submit', async (e) => {
        e.preventDefault();
        resultDiv.innerHTML = "<div style='text-align:center; padding:30px;'>⏳ Analyse en cours...</div>";
        const formData = new FormData(e.target);
        try {
          const res = await fetch('/scan', { method: 'POST', body: formData });
          const htmlContent = await res.text();
          resultDiv.innerHTML = htmlContent;
        } catch (err) {
          resultDiv.innerHTML = "<div style='color:red; text-align:center'>Erreur : " + err.message + "</div>";
        }
      });
    </script>
  </body>
</html>`

func (r *Router) handleIndex(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(indexPage))
}
