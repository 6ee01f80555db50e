package collabs

import "github.com/sirupsen/logrus"

var log = logrus.WithField("prefix", "collabs")
