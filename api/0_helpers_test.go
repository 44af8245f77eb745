package api

import (
	"net/http"
	"testing"

	"github.com/fulldump/biff"
)

func TestFormatRemoteAddr(t *testing.T) {

	r := &http.Request{RemoteAddr: "10.0.0.1:5555", Header: http.Header{}}
	biff.AssertEqual(formatRemoteAddr(r), "10.0.0.1")

	r.Header.Set("X-Forwarded-For", "1.2.3.4, 10.0.0.1")
	biff.AssertEqual(formatRemoteAddr(r), "1.2.3.4")
}

func TestBoolParam(t *testing.T) {

	r, _ := http.NewRequest("GET", "/v1/persons:run?concurrent=true", nil)
	v, err := boolParam(r, "concurrent")
	biff.AssertNil(err)
	biff.AssertTrue(v)

	r, _ = http.NewRequest("GET", "/v1/persons:run", nil)
	v, err = boolParam(r, "concurrent")
	biff.AssertNil(err)
	biff.AssertFalse(v)

	r, _ = http.NewRequest("GET", "/v1/persons:run?concurrent=maybe", nil)
	_, err = boolParam(r, "concurrent")
	biff.AssertNotNil(err)
}
