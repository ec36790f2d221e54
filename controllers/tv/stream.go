package tvcontroller

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"gorm.io/gorm"

	"github.com/kursatemre/qr-menu-api/carousel"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type pageFrame struct {
	Page       int         `json:"page"`
	TotalPages int         `json:"total_pages"`
	Items      interface{} `json:"items"`
	Empty      bool        `json:"empty,omitempty"`
}

// StreamCarousel upgrades the TV connection to a websocket and pushes the
// current page on connect and on every rotation tick. Each connection owns
// its carousel; closing the connection cancels the rotation, so navigating
// away never leaks a timer. ?mode=categories rotates one category per tick
// instead of a six-product page.
func StreamCarousel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		var (
			items    func(start, end int) interface{}
			length   int
			pageSize int
			interval time.Duration
		)

		if c.Query("mode") == "categories" {
			categories := loadTVCategories(db)
			length = len(categories)
			pageSize = carousel.CategoryPageSize
			interval = carousel.CategoryInterval
			items = func(start, end int) interface{} { return categories[start:end] }
		} else {
			products := loadTVProducts(db)
			length = len(products)
			pageSize = carousel.ProductPageSize
			interval = carousel.ProductInterval
			items = func(start, end int) interface{} { return products[start:end] }
		}

		ctx, cancel := context.WithCancel(c.Request.Context())
		defer cancel()

		// Reader pump: the TV never sends meaningful data, but a read
		// error is how we learn the screen went away.
		go func() {
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					cancel()
					return
				}
			}
		}()

		ctrl := carousel.New(length, pageSize, interval)

		// One write at a time; the ticker callback and the initial frame
		// must not interleave on the connection.
		var writeMu sync.Mutex
		sendPage := func(page int) {
			writeMu.Lock()
			defer writeMu.Unlock()

			start, end := carousel.PageBounds(page, length, pageSize)
			frame := pageFrame{
				Page:       page,
				TotalPages: ctrl.Pages(),
				Items:      items(start, end),
				Empty:      length == 0,
			}
			if err := conn.WriteJSON(frame); err != nil {
				cancel()
			}
		}

		sendPage(ctrl.Index())
		ctrl.Run(ctx, sendPage)
	}
}
