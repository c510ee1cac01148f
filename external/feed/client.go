package feed

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httputil"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/ThilakNarasimhamurthy/Dot/schema"
)

// Client talks to the upstream telemetry ingestion service. The feed is
// read-only from this side; every fetch returns a complete snapshot that
// supersedes the previous one.
type Client struct {
	endpoint string
	client   *http.Client
}

func New(endpoint string) *Client {
	return &Client{
		endpoint: endpoint,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type zonesResponse struct {
	Zones []schema.ZoneSample `json:"zones"`
	Count int                 `json:"count"`
}

type segmentsResponse struct {
	Segments []schema.SegmentSample `json:"segments"`
	Count    int                    `json:"count"`
}

type predictionsResponse struct {
	Predictions []schema.PredictedSegment `json:"predictions"`
	Count       int                       `json:"count"`
}

func (f *Client) get(path string, result interface{}) error {
	reqString := fmt.Sprintf("%s%s", f.endpoint, path)
	log.WithField("prefix", "feed").WithField("req", reqString).Debug("request from telemetry feed")

	resp, err := f.client.Get(reqString)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		dumpBytes, err := httputil.DumpResponse(resp, true)
		if err != nil {
			log.WithField("prefix", "feed").WithError(err).Error("fail to dump response")
		}
		log.WithField("prefix", "feed").WithField("resp", string(dumpBytes)).Error("error response from telemetry feed")
		return fmt.Errorf("fail to query telemetry feed")
	}

	return json.NewDecoder(resp.Body).Decode(result)
}

// FetchZones retrieves the current zone snapshot.
func (f *Client) FetchZones() ([]schema.ZoneSample, error) {
	var result zonesResponse
	if err := f.get("/api/zones/current", &result); err != nil {
		return nil, err
	}
	return result.Zones, nil
}

// FetchSegments retrieves the current segment snapshot.
func (f *Client) FetchSegments() ([]schema.SegmentSample, error) {
	var result segmentsResponse
	if err := f.get("/api/segments/current", &result); err != nil {
		return nil, err
	}
	return result.Segments, nil
}

// FetchPredictions retrieves the current prediction records.
func (f *Client) FetchPredictions() ([]schema.PredictedSegment, error) {
	var result predictionsResponse
	if err := f.get("/api/predictions/current", &result); err != nil {
		return nil, err
	}
	return result.Predictions, nil
}
