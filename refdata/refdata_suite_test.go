package refdata_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestRefdata(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Refdata Suite")
}
