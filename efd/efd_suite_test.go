package efd_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestEfd(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Efd Suite")
}
