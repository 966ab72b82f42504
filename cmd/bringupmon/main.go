package main

import (
	"encoding/json"
	"flag"
	"log"
	"os"
	"reflect"

	"github.com/golang/glog"

	"github.com/robotalks/bringup/pkg/framework"
	"github.com/robotalks/bringup/pkg/report"
	"github.com/robotalks/bringup/pkg/report/mqtt"
)

var (
	mqttURL    = "mqtt://localhost:1883/bringup/"
	outputJSON bool
)

func init() {
	if val := os.Getenv("BRINGUP_REPORT_URL"); val != "" {
		mqttURL = val
	}
	flag.StringVar(&mqttURL, "mqtt", mqttURL, "MQTT broker URL.")
	flag.BoolVar(&outputJSON, "json", outputJSON, "Print reports in JSON.")
}

func show(pkt mqtt.Packet) {
	r, err := report.DecodeReport(pkt.Payload)
	if err != nil {
		log.Printf("%s: bad report: %v", pkt.BoardID, err)
		return
	}
	if outputJSON {
		out, err := json.Marshal(r)
		if err != nil {
			log.Printf("%s: %v", pkt.BoardID, err)
			return
		}
		log.Printf("%s: %s", pkt.BoardID, out)
		return
	}
	log.Printf("%s: [%s] %s", pkt.BoardID,
		reflect.Indirect(reflect.ValueOf(r)).Type().Name(), r.String())
}

func main() {
	flag.Parse()
	defer glog.Flush()
	log.SetFlags(log.Lmicroseconds)

	q, err := mqtt.NewQueueFromURL(mqttURL)
	if err != nil {
		log.Fatalln(err)
	}
	if err := q.Connect(); err != nil {
		log.Fatalln(err)
	}
	defer q.Close()

	reader := mqtt.NewReader(q)
	runner := framework.NewRunner().HandleSignals().Go(reader)
	go func() {
		for {
			pkt, err := reader.Read()
			if err != nil {
				return
			}
			show(pkt)
		}
	}()
	if err := runner.Wait(); err != nil {
		glog.Error(err)
	}
}
