package cmd

import (
	"bytes"
	"fmt"
	"path/filepath"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/cristijiru/mozart/constants"
	"github.com/cristijiru/mozart/midi"
	"github.com/cristijiru/mozart/score"
	"github.com/cristijiru/mozart/util"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(publishCmd)
}

var publishCmd = &cobra.Command{
	Use:   "publish <score.mozart.json>",
	Short: "Uploads a score and its MIDI export",
	Long: `Exports the score to MIDI and uploads both the .mozart.json and the
.mid to the S3 bucket named by MOZART_BUCKET.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := score.Load(args[0])
		if err != nil {
			return err
		}

		scoreBytes, err := s.ToJSON()
		if err != nil {
			return err
		}
		midiBytes, err := midi.Export(s)
		if err != nil {
			return err
		}

		sess, err := session.NewSession(&aws.Config{
			Region: aws.String(constants.GetPublishRegion()),
		})
		if err != nil {
			panic("Could not create an S3 session because " + err.Error())
		}
		client := s3.New(sess)

		bucket := constants.GetPublishBucket()
		scoreKey := filepath.Base(args[0])
		midiKey := filepath.Base(util.MidiPath(args[0]))

		put(client, bucket, scoreKey, scoreBytes, "application/json")
		put(client, bucket, midiKey, midiBytes, "audio/midi")

		fmt.Printf("Published %v and %v to %v\n", scoreKey, midiKey, bucket)
		return nil
	},
}

func put(client *s3.S3, bucket, key string, data []byte, contentType string) {
	_, err := client.PutObject(&s3.PutObjectInput{
		Bucket:      aws.String(bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		panic("Could not upload " + key + " because: " + err.Error())
	}
}
