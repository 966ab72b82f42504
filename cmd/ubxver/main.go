package main

import (
	"context"
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

	glog.Infof("polling version on spi %q", conf.GNSS.SPI.Port)
	res, err := probe.Version(context.Background(), conf.GNSS)
	r := report.NewVersionReport(nil, nil, err)
	if res != nil {
		r = report.NewVersionReport(res.Raw, res.Version, err)
	}
	if perr := pub.Publish(r); perr != nil {
		glog.Warningf("publish report: %v", perr)
	}
	if err != nil {
		glog.Errorf("didn't find version packet: %v", err)
		return 1
	}
	glog.Infof("packet: % x", res.Raw)
	glog.Infof("SW version: %s", res.Version.Software)
	glog.Infof("HW version: %s", res.Version.Hardware)
	for _, ext := range res.Version.Extensions {
		glog.Infof("extension: %s", ext)
	}
	return 0
}

func main() {
	flag.Parse()
	code := run()
	glog.Flush()
	os.Exit(code)
}
