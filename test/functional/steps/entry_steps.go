package steps

func (fc *FeatureContext) iCreateAnEntryWithSetTo(fieldIdentifier, value string) error {
	resp, err := fc.apiDriver.CreateEntry(fc.contentTypeID, map[string]any{fieldIdentifier: value})
	fc.require.NoError(err)
	fc.response = resp
	return nil
}

func (fc *FeatureContext) anEntryExistsWithSetTo(fieldIdentifier, value string) error {
	if err := fc.iCreateAnEntryWithSetTo(fieldIdentifier, value); err != nil {
		return err
	}
	fc.require.Equal(201, fc.response.StatusCode, "entry setup failed")
	return fc.theResponseShouldContainTheEntryDetails()
}

func (fc *FeatureContext) iCreateAnEntryWithoutAnyData() error {
	resp, err := fc.apiDriver.CreateEntry(fc.contentTypeID, map[string]any{})
	fc.require.NoError(err)
	fc.response = resp
	return nil
}

func (fc *FeatureContext) iGetTheEntryByItsID() error {
	resp, err := fc.apiDriver.GetEntry(fc.contentTypeID, fc.entryID)
	fc.require.NoError(err)
	fc.response = resp
	return nil
}

func (fc *FeatureContext) iUpdateTheEntryWithSetTo(fieldIdentifier, value string) error {
	resp, err := fc.apiDriver.UpdateEntry(fc.contentTypeID, fc.entryID, map[string]any{fieldIdentifier: value})
	fc.require.NoError(err)
	fc.response = resp
	return nil
}

func (fc *FeatureContext) iListAllEntriesOfTheContentType() error {
	resp, err := fc.apiDriver.ListEntries(fc.contentTypeID)
	fc.require.NoError(err)
	fc.response = resp
	return nil
}

func (fc *FeatureContext) iDeleteTheEntry() error {
	resp, err := fc.apiDriver.DeleteEntry(fc.contentTypeID, fc.entryID)
	fc.require.NoError(err)
	fc.response = resp
	return nil
}

func (fc *FeatureContext) theResponseShouldContainTheEntryDetails() error {
	var data map[string]any
	err := fc.decodeBody(fc.response.Body, &data)
	fc.require.NoError(err)
	fc.require.NotEmpty(data["id"])
	fc.entryID = data["id"].(string)
	fc.responseData = data
	return nil
}

func (fc *FeatureContext) theResponseShouldContainTheEntryWithSetTo(fieldIdentifier, value string) error {
	var data map[string]any
	err := fc.decodeBody(fc.response.Body, &data)
	fc.require.NoError(err)

	entryData, ok := data["data"].(map[string]any)
	fc.require.True(ok, "entry payload missing data object")
	fc.require.Equal(value, entryData[fieldIdentifier])
	fc.responseData = data
	return nil
}

func (fc *FeatureContext) theListShouldContainOurEntry() error {
	listData, err := fc.decodePaginatedResponse(fc.response)
	fc.require.NoError(err)

	found := false
	for _, item := range listData {
		if item["id"] == fc.entryID {
			found = true
			break
		}
	}
	fc.require.True(found, "entry %s not found in list", fc.entryID)
	fc.responseListData = listData
	return nil
}

func (fc *FeatureContext) theResponseShouldListTheValidationProblems() error {
	var data map[string]any
	err := fc.decodeBody(fc.response.Body, &data)
	fc.require.NoError(err)

	problems, ok := data["errors"].([]any)
	fc.require.True(ok, "response carries no validation errors")
	fc.require.NotEmpty(problems)
	return nil
}
