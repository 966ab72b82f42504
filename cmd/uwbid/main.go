package main

import (
	"flag"
	"os"

	"github.com/golang/glog"

	"github.com/robotalks/bringup/pkg/board"
	"github.com/robotalks/bringup/pkg/probe"
	"github.com/robotalks/bringup/pkg/report"
	"github.com/robotalks/bringup/pkg/report/sink"
)

func init() {
	board.SetupFlags()
}

func run() int {
	conf := board.NewConfig().MustValidate()
	pub, w, err := sink.OpenPublisher(conf.ReportURL, conf.ID)
	if err != nil {
		glog.Errorf("open report sink: %v", err)
		return 1
	}
	defer w.Close()

	id, err := probe.DeviceID(conf.UWB)
	if perr := pub.Publish(report.NewDeviceIDReport(id, err)); perr != nil {
		glog.Warningf("publish report: %v", perr)
	}
	if err != nil {
		glog.Error(err)
		return 1
	}
	glog.Infof("device id: %s", id)
	return 0
}

func main() {
	flag.Parse()
	code := run()
	glog.Flush()
	os.Exit(code)
}
