package steps

import (
	"fmt"

	"atlas-cms/internal/infra/utils"
)

// saltedIdentifier keeps reruns against a long-lived database from tripping
// the unique api_identifier constraint.
func saltedIdentifier(identifier string) string {
	return fmt.Sprintf("%s_%s", identifier, utils.GenerateHEX(6))
}

func (fc *FeatureContext) iCreateAContentTypeWithARequiredTextField(identifier, fieldIdentifier string) error {
	fc.apiIdentifier = saltedIdentifier(identifier)
	fields := []map[string]any{
		{"identifier": fieldIdentifier, "label": fieldIdentifier, "kind": "text", "required": true},
	}

	resp, err := fc.apiDriver.CreateContentType(fc.apiIdentifier, identifier, fields)
	fc.require.NoError(err)
	fc.response = resp
	return nil
}

func (fc *FeatureContext) aContentTypeWithARequiredTextField(identifier, fieldIdentifier string) error {
	if err := fc.iCreateAContentTypeWithARequiredTextField(identifier, fieldIdentifier); err != nil {
		return err
	}
	fc.require.Equal(201, fc.response.StatusCode, "content type setup failed")
	return fc.theResponseShouldContainTheContentTypeDetails()
}

func (fc *FeatureContext) iAddANumberFieldToTheContentType(fieldIdentifier string) error {
	resp, err := fc.apiDriver.AddField(fc.contentTypeID, map[string]any{
		"identifier": fieldIdentifier,
		"label":      fieldIdentifier,
		"kind":       "number",
		"required":   false,
	})
	fc.require.NoError(err)
	fc.response = resp
	return nil
}

func (fc *FeatureContext) iRemoveTheFieldFromTheContentType(fieldIdentifier string) error {
	resp, err := fc.apiDriver.RemoveField(fc.contentTypeID, fieldIdentifier)
	fc.require.NoError(err)
	fc.response = resp
	return nil
}

func (fc *FeatureContext) iGetTheContentTypeByItsID() error {
	resp, err := fc.apiDriver.GetContentType(fc.contentTypeID)
	fc.require.NoError(err)
	fc.response = resp
	return nil
}

func (fc *FeatureContext) iRenameTheContentTypeTo(newName string) error {
	resp, err := fc.apiDriver.UpdateContentType(fc.contentTypeID, newName)
	fc.require.NoError(err)
	fc.response = resp
	return nil
}

func (fc *FeatureContext) iListAllContentTypes() error {
	resp, err := fc.apiDriver.ListContentTypes()
	fc.require.NoError(err)
	fc.response = resp
	return nil
}

func (fc *FeatureContext) iDeleteTheContentType() error {
	resp, err := fc.apiDriver.DeleteContentType(fc.contentTypeID)
	fc.require.NoError(err)
	fc.response = resp
	return nil
}

func (fc *FeatureContext) theResponseShouldContainTheContentTypeDetails() error {
	var data map[string]any
	err := fc.decodeBody(fc.response.Body, &data)
	fc.require.NoError(err)
	fc.require.NotEmpty(data["id"])
	fc.contentTypeID = data["id"].(string)
	fc.responseData = data
	return nil
}

func (fc *FeatureContext) theResponseShouldContainTheContentTypeWithName(name string) error {
	var data map[string]any
	err := fc.decodeBody(fc.response.Body, &data)
	fc.require.NoError(err)
	fc.require.Equal(name, data["name"])
	fc.responseData = data
	return nil
}

func (fc *FeatureContext) theListShouldContainOurContentType() error {
	listData, err := fc.decodePaginatedResponse(fc.response)
	fc.require.NoError(err)

	found := false
	for _, item := range listData {
		if item["id"] == fc.contentTypeID {
			found = true
			break
		}
	}
	fc.require.True(found, "content type %s not found in list", fc.contentTypeID)
	fc.responseListData = listData
	return nil
}

func (fc *FeatureContext) theContentTypeShouldHaveAField(fieldIdentifier string) error {
	fc.require.True(fc.hasField(fieldIdentifier), "field %s not found", fieldIdentifier)
	return nil
}

func (fc *FeatureContext) theContentTypeShouldNotHaveAField(fieldIdentifier string) error {
	fc.require.False(fc.hasField(fieldIdentifier), "field %s should be gone", fieldIdentifier)
	return nil
}

func (fc *FeatureContext) hasField(fieldIdentifier string) bool {
	fields, ok := fc.responseData["fields"].([]any)
	if !ok {
		return false
	}

	for _, raw := range fields {
		field, ok := raw.(map[string]any)
		if ok && field["identifier"] == fieldIdentifier {
			return true
		}
	}
	return false
}
