package server

// indexFallbackPage is served when internal/templates/index.html is not on
// disk (stripped container images, tests run from the package directory).
const indexFallbackPage = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <title>ImpactCast</title>
</head>
<body>
    <h1>☄️ ImpactCast</h1>
    <p>Asteroid impact consequence estimation service.</p>
    <ul>
        <li>POST /simulate — run a simulation</li>
        <li>POST /story — narrative for results</li>
        <li>POST /report — generate a stored HTML report</li>
        <li>GET /reports — list stored reports</li>
        <li>GET /health — health check</li>
    </ul>
</body>
</html>
`
