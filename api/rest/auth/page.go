package auth

import "html/template"

// popup page rendered after a successful login. the extension opened this
// window and listens for the AUTH_SUCCESS message; direct visits fall back
// to localStorage and a redirect to the frontend.
var callbackTemplate = template.Must(template.New("callback").Parse(`<!DOCTYPE html>
<html>
  <head>
    <title>Authentication Successful</title>
  </head>
  <body>
    <script>
      var payload = {{.Payload}};
      if (window.opener) {
        window.opener.postMessage(payload, '*');
        window.close();
      } else {
        localStorage.setItem('token', payload.token);
        localStorage.setItem('user', JSON.stringify(payload.user));
        window.location.href = {{.FrontendURL}};
      }
    </script>
    <p>Authentication successful! You can close this window.</p>
  </body>
</html>
`))
