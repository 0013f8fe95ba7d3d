package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

var maxDevices int = 1000
var messagesPerDevice int = 3
var httpHostPort string = "127.0.0.1:1080"

var rnd *rand.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))

var deviceTypes = []string{"mcr", "engine", "remote", "handheld"}

type frame struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

func main() {
	deviceIDs := make([]string, maxDevices)
	for i := 0; i < maxDevices; i++ {
		deviceIDs[i] = uuid.NewString()
	}
	fmt.Printf("generated %v device IDs\n", maxDevices)

	resp, err := http.Get(fmt.Sprintf("http://%s/healthz", httpHostPort))
	if err != nil {
		log.Fatal("Failed to connect to HTTP server:", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		log.Fatal("HTTP server not available")
	}

	fmt.Printf("http server verified\n")

	var startTime time.Time
	var usedTime time.Duration

	startTime = time.Now()
	conns := make([]*websocket.Conn, maxDevices)
	wg := sync.WaitGroup{}
	for i := 0; i < maxDevices; i++ {
		i := i
		wg.Add(1)
		go func() {
			conns[i] = registerDevice(deviceIDs[i], i)
			fmt.Printf("\rregistered device %v", i)
			wg.Done()
		}()
	}
	wg.Wait()
	usedTime = time.Since(startTime)

	fmt.Printf(
		"\rregistered %v devices: used time=%v seconds, throughput=%v action/second\n",
		maxDevices, usedTime.Seconds(), float64(maxDevices)/usedTime.Seconds(),
	)

	// drain every broadcast so server writes never block on full buffers
	for i := 0; i < maxDevices; i++ {
		if conns[i] != nil {
			go drain(conns[i])
		}
	}

	startTime = time.Now()
	wg = sync.WaitGroup{}
	for i := 0; i < maxDevices; i++ {
		i := i
		wg.Add(1)
		go func() {
			doAction(deviceIDs[i], conns[i])
			wg.Done()
		}()
	}
	wg.Wait()
	usedTime = time.Since(startTime)

	fmt.Printf(
		"\n\rdid actions for %v devices: used time=%v seconds, throughput=%v action/second\n",
		maxDevices, usedTime.Seconds(), float64(maxDevices*messagesPerDevice)/usedTime.Seconds(),
	)

	for i := 0; i < maxDevices; i++ {
		if conns[i] != nil {
			conns[i].Close()
		}
	}
}

func flipCoin() bool {
	return rnd.Int31n(100000)%2 == 0
}

// registerDevice brings a device online, over the websocket for even devices
// and over the CRUD surface for odd ones. Only websocket devices keep a
// connection around.
func registerDevice(deviceID string, index int) *websocket.Conn {
	deviceType := deviceTypes[index%len(deviceTypes)]
	name := fmt.Sprintf("bench-%s-%d", deviceType, index)

	if index%2 == 1 {
		payload := map[string]string{
			"id":   deviceID,
			"name": name,
			"type": deviceType,
		}
		jsonData, _ := json.Marshal(payload)
		resp, err := http.Post(fmt.Sprintf("http://%s/devices", httpHostPort), "application/json", bytes.NewBuffer(jsonData))
		if err != nil {
			panic(err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			panic(fmt.Sprintf("register over http failed: %v", resp.StatusCode))
		}
		return nil
	}

	conn, _, err := websocket.DefaultDialer.Dial(fmt.Sprintf("ws://%s/ws", httpHostPort), nil)
	if err != nil {
		panic(err)
	}

	sendCommand(conn, "register-device", map[string]string{
		"id":   deviceID,
		"name": name,
		"type": deviceType,
	})

	// wait for the presence snapshot before counting the device as registered
	for {
		var f frame
		if err := conn.ReadJSON(&f); err != nil {
			panic(err)
		}
		if f.Event == "connected-devices" {
			return conn
		}
		if f.Event == "error" {
			panic(fmt.Sprintf("register over ws failed: %s", f.Data))
		}
	}
}

func drain(conn *websocket.Conn) {
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func doAction(deviceID string, conn *websocket.Conn) {
	actions := []func(){
		genSendMessageAction(deviceID, conn),
		genHeartbeatAction(deviceID, conn),
		genListMessagesAction(deviceID),
	}
	actionNames := []string{
		"SendMessage",
		"Heartbeat",
		"ListMessages",
	}
	rnd.Shuffle(len(actions), func(i, j int) {
		actions[i], actions[j] = actions[j], actions[i]
		actionNames[i], actionNames[j] = actionNames[j], actionNames[i]
	})
	for index, action := range actions {
		action()
		fmt.Printf("\rexecuted action %v for device %v", actionNames[index], deviceID)
		time.Sleep(time.Duration(100+rnd.Int31n(1000)) * time.Millisecond)
	}
}

func sendCommand(conn *websocket.Conn, event string, payload any) {
	raw, _ := json.Marshal(payload)
	if err := conn.WriteJSON(frame{Event: event, Data: raw}); err != nil {
		fmt.Printf("\nerror: %v\n", err)
	}
}

func genSendMessageAction(deviceID string, conn *websocket.Conn) func() {
	return func() {
		text := fmt.Sprintf("status report %v", rnd.Int31n(100000))
		payload := map[string]string{
			"text":     text,
			"source":   deviceID,
			"deviceId": deviceID,
		}

		if conn != nil && flipCoin() {
			sendCommand(conn, "send-message", payload)
			return
		}

		jsonData, _ := json.Marshal(payload)
		resp, err := http.Post(fmt.Sprintf("http://%s/messages", httpHostPort), "application/json", bytes.NewBuffer(jsonData))
		if err != nil {
			fmt.Printf("\nerror: %v\n", err)
			return
		}
		defer resp.Body.Close()
	}
}

func genHeartbeatAction(deviceID string, conn *websocket.Conn) func() {
	return func() {
		if conn == nil {
			return
		}
		sendCommand(conn, "heartbeat", map[string]string{"deviceId": deviceID})
	}
}

func genListMessagesAction(deviceID string) func() {
	return func() {
		resp, err := http.Get(fmt.Sprintf("http://%s/messages?deviceId=%s&limit=50", httpHostPort, deviceID))
		if err != nil {
			fmt.Printf("\nerror: %v\n", err)
			return
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			fmt.Printf("\nresponse status code != 200: %v\n", resp)
		}
	}
}
