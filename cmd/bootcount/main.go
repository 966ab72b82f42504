package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/golang/glog"

	"github.com/robotalks/bringup/pkg/board"
	"github.com/robotalks/bringup/pkg/bootcount"
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

	res, err := probe.Boot(conf.EEPROM)
	if res != nil {
		fmt.Printf("Found EEPROM device %q\n", res.Device)
		fmt.Printf("Using eeprom with size of: %d.\n", res.Size)
		if perr := pub.Publish(report.NewBootReport(res.Device, res.Size, res.Booted, err)); perr != nil {
			glog.Warningf("publish report: %v", perr)
		}
	}
	var verr *bootcount.VerifyError
	switch {
	case errors.As(err, &verr):
		fmt.Printf("Device booted %d times.\n", res.Booted)
		glog.Error(verr)
		return 0
	case err != nil:
		glog.Error(err)
		return 1
	}
	fmt.Printf("Device booted %d times.\n", res.Booted)
	return 0
}

func main() {
	flag.Parse()
	code := run()
	glog.Flush()
	os.Exit(code)
}
