package handler

import (
	"errors"
	"time"

	"github.com/fadilmartias/mentor-eval/internal/dto"
	"github.com/fadilmartias/mentor-eval/internal/model"
	"github.com/fadilmartias/mentor-eval/internal/util"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/tidwall/gjson"
)

func paramID(c *fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params(name))
	if err != nil {
		return uuid.Nil, util.NewFormError("invalid id", map[string]string{name: "must be a uuid"})
	}
	return id, nil
}

// queryStage parses the optional ?stage= filter. Empty means every stage.
func queryStage(c *fiber.Ctx) (model.Stage, error) {
	raw := c.Query("stage")
	if raw == "" {
		return "", nil
	}
	stage, err := model.ParseStage(raw)
	if err != nil {
		return "", util.NewFormError("invalid stage", map[string]string{"stage": err.Error()})
	}
	return stage, nil
}

// parseEvaluationPatch reads a PATCH body. Keys that are absent stay
// untouched; a null reference id clears it. The owner, stage and template of
// an evaluation cannot be changed.
func parseEvaluationPatch(body []byte) (dto.EvaluationPatch, error) {
	var patch dto.EvaluationPatch
	if !gjson.ValidBytes(body) {
		return patch, util.NewFormError("invalid body", map[string]string{"body": "malformed JSON"})
	}
	doc := gjson.ParseBytes(body)
	if !doc.IsObject() {
		return patch, util.NewFormError("invalid body", map[string]string{"body": "must be a JSON object"})
	}

	errs := map[string]string{}
	doc.ForEach(func(key, value gjson.Result) bool {
		field := key.String()
		switch field {
		case "scores":
			if !value.IsObject() {
				errs[field] = "must be an object"
				return true
			}
			patch.Scores = map[string]float64{}
			value.ForEach(func(k, v gjson.Result) bool {
				if v.Type != gjson.Number {
					errs["scores."+k.String()] = "must be a number"
					return true
				}
				patch.Scores[k.String()] = v.Float()
				return true
			})
		case "feedback":
			if value.Type != gjson.String {
				errs[field] = "must be a string"
				return true
			}
			feedback := value.String()
			patch.Feedback = &feedback
		case "application_id":
			id, err := nullableUUID(value)
			if err != nil {
				errs[field] = err.Error()
				return true
			}
			patch.SetApplicationID, patch.ApplicationID = true, id
		case "job_posting_id":
			id, err := nullableUUID(value)
			if err != nil {
				errs[field] = err.Error()
				return true
			}
			patch.SetJobPostingID, patch.JobPostingID = true, id
		case "evaluation_date":
			at, err := time.Parse(time.RFC3339, value.String())
			if value.Type != gjson.String || err != nil {
				errs[field] = "must be an RFC 3339 timestamp"
				return true
			}
			patch.EvaluationDate = &at
		case "user_id", "stage", "template_id":
			errs[field] = "cannot be changed"
		default:
			errs[field] = "unknown field"
		}
		return true
	})

	if len(errs) > 0 {
		return dto.EvaluationPatch{}, util.NewFormError("invalid evaluation", errs)
	}
	return patch, nil
}

var errBadReference = errors.New("must be a uuid or null")

func nullableUUID(value gjson.Result) (*uuid.UUID, error) {
	if value.Type == gjson.Null {
		return nil, nil
	}
	if value.Type != gjson.String {
		return nil, errBadReference
	}
	id, err := uuid.Parse(value.String())
	if err != nil {
		return nil, errBadReference
	}
	return &id, nil
}
