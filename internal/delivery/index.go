package delivery

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const indexPageContent = `
<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <title>Catalog Service API</title>
    <style>
        body { font-family: Helvetica, Arial, sans-serif; line-height: 1.6; padding: 20px; background-color: #f9f9f9; color: #333; }
        h1, h2 { border-bottom: 1px solid #ccc; padding-bottom: 5px; }
        ul { list-style: none; padding-left: 0; }
        li { margin-bottom: 15px; background-color: #fff; padding: 10px; border: 1px solid #eee; border-radius: 4px; }
        code { background-color: #e8e8e8; padding: 3px 6px; border-radius: 3px; font-family: Consolas, Monaco, monospace; }
        .method { font-weight: bold; display: inline-block; width: 60px; }
        .method-post { color: #49cc90; }
        .method-get { color: #61affe; }
        .method-delete { color: #f93e3e; }
    </style>
</head>
<body>
    <h1>Catalog Service API</h1>

    <h2>Categories</h2>
    <ul>
        <li><span class="method method-get">GET</span> <code><a href="/api/category/">/api/category/</a></code> - List all categories.</li>
        <li><span class="method method-get">GET</span> <code>/api/category/{catId}</code> - Fetch one category.</li>
        <li><span class="method method-post">POST</span> <code>/api/category/</code> - Create. Body: <code>{"name": "string"}</code></li>
        <li><span class="method method-post">POST</span> <code>/api/category/{catId}</code> - Update. Body: <code>{"name": "string"}</code></li>
        <li><span class="method method-delete">DELETE</span> <code>/api/category/{catId}</code> - Delete.</li>
    </ul>

    <h2>Products</h2>
    <ul>
        <li><span class="method method-get">GET</span> <code><a href="/api/product/">/api/product/</a></code> - List all products.</li>
        <li><span class="method method-get">GET</span> <code>/api/product/{prdId}</code> - Fetch one product.</li>
        <li><span class="method method-post">POST</span> <code>/api/product/</code> - Create. Body: <code>{"name": "string", "description": "string", "category": {"catId": int}}</code></li>
        <li><span class="method method-post">POST</span> <code>/api/product/{prdId}</code> - Update. Same body as create.</li>
        <li><span class="method method-delete">DELETE</span> <code>/api/product/{prdId}</code> - Delete.</li>
    </ul>
</body>
</html>
`

func ServeIndexPage(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(indexPageContent))
}

// Pinger is satisfied by *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

func HealthCheck(db Pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			ErrorResponse(c, http.StatusServiceUnavailable, "Database unavailable")
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
