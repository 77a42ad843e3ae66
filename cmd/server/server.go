package main

import (
	"bytes"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo"
	"github.com/labstack/echo/middleware"
	"github.com/tmpim/halfblock"
)

const (
	maxImageSize       = 32 << 20
	decodeErrorMessage = "error: Could not read image."
)

var (
	upgrader = websocket.Upgrader{
		HandshakeTimeout: 5 * time.Second,
	}
)

func newServer() *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Logger())

	api := e.Group("/api")

	api.POST("/render", handleRender, middleware.BodyLimit("32M"))
	api.GET("/stream", handleStream)

	return e
}

func handleRender(c echo.Context) error {
	color := true
	if v := c.QueryParam("grayscale"); v != "" {
		grayscale, err := strconv.ParseBool(v)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid grayscale value")
		}
		color = !grayscale
	}

	src, err := halfblock.Decode(c.Request().Body, color)
	if err != nil {
		return c.String(http.StatusBadRequest, decodeErrorMessage+"\n")
	}

	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextPlainCharsetUTF8)
	c.Response().WriteHeader(http.StatusOK)

	_, err = halfblock.WriteLines(c.Response(), halfblock.Lines(src, color))
	return err
}

func handleStream(c echo.Context) error {
	ws, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}
	defer ws.Close()

	ws.SetReadLimit(maxImageSize)
	streamImages(ws)

	return nil
}

// streamImages renders every binary message received as an image, replying
// with one text message per line and an empty text message after the last
// line. The text messages "grayscale" and "color" switch the mode for
// subsequent images.
func streamImages(ws *websocket.Conn) {
	color := true

	for {
		msgType, data, err := ws.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure,
				websocket.CloseGoingAway) {
				log.Println("halfblock server: stream read error:", err)
			}
			return
		}

		if msgType == websocket.TextMessage {
			switch strings.TrimSpace(string(data)) {
			case "grayscale":
				color = false
			case "color":
				color = true
			}
			continue
		}

		if msgType != websocket.BinaryMessage {
			continue
		}

		src, err := halfblock.Decode(bytes.NewReader(data), color)
		if err != nil {
			err = ws.WriteMessage(websocket.TextMessage, []byte(decodeErrorMessage))
			if err != nil {
				return
			}
			continue
		}

		for line := range halfblock.Lines(src, color) {
			err = ws.WriteMessage(websocket.TextMessage, []byte(line))
			if err != nil {
				log.Println("halfblock server: stream write error:", err)
				return
			}
		}

		err = ws.WriteMessage(websocket.TextMessage, nil)
		if err != nil {
			log.Println("halfblock server: stream write error:", err)
			return
		}
	}
}
