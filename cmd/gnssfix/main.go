package main

import (
	"flag"
	"os"

	"github.com/golang/glog"

	"github.com/robotalks/bringup/pkg/board"
	"github.com/robotalks/bringup/pkg/framework"
	"github.com/robotalks/bringup/pkg/gnss"
	"github.com/robotalks/bringup/pkg/report"
	"github.com/robotalks/bringup/pkg/report/sink"
)

var count int

func init() {
	board.SetupFlags()
	flag.IntVar(&count, "n", count, "Stop after N fixes, 0 for no limit.")
}

func run() int {
	conf := board.NewConfig().MustValidate()
	pub, w, err := sink.OpenPublisher(conf.ReportURL, conf.ID)
	if err != nil {
		glog.Errorf("open report sink: %v", err)
		return 1
	}
	defer w.Close()

	port, err := conf.GNSS.OpenSerial()
	if err != nil {
		glog.Error(err)
		return 1
	}
	var fixes int
	runner := framework.NewRunner().HandleSignals()
	stream := gnss.NewStream(conf.GNSS.Serial, port, gnss.FixHandlerFunc(func(fix gnss.Fix) {
		fixes++
		glog.Infof("fix %d: %+v", fixes, fix)
		if err := pub.Publish(report.NewFixReport(fix)); err != nil {
			glog.Warningf("publish report: %v", err)
		}
		if count > 0 && fixes >= count {
			port.Close()
		}
	}))
	err = runner.Go(stream).Wait()
	glog.Infof("%d fixes, %d sentences, %d malformed", fixes, stream.Sentences(), stream.Malformed())
	if err != nil && !(count > 0 && fixes >= count) {
		glog.Error(err)
		return 1
	}
	return 0
}

func main() {
	flag.Parse()
	code := run()
	glog.Flush()
	os.Exit(code)
}
