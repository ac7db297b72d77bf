package steps

const (
	adminEmail    = "admin@atlas.local"
	adminName     = "Atlas Admin"
	adminPassword = "super-secret-1"
)

// anAuthenticatedAdminSession bootstraps the first admin when the instance is
// fresh and logs in either way. Registration failing because an account
// already exists is fine.
func (fc *FeatureContext) anAuthenticatedAdminSession() error {
	resp, err := fc.apiDriver.Register(adminEmail, adminName, adminPassword)
	fc.require.NoError(err)
	resp.Body.Close()

	resp, err = fc.apiDriver.Login(adminEmail, adminPassword)
	fc.require.NoError(err)
	fc.require.Equal(200, resp.StatusCode, "admin login failed")

	var data map[string]any
	err = fc.decodeBody(resp.Body, &data)
	fc.require.NoError(err)
	fc.require.NotEmpty(data["token"])

	fc.apiDriver.SetToken(data["token"].(string))
	return nil
}

func (fc *FeatureContext) iLogInWithEmailAndPassword(email, password string) error {
	resp, err := fc.apiDriver.Login(email, password)
	fc.require.NoError(err)
	fc.response = resp
	return nil
}

func (fc *FeatureContext) iRequestMyOwnProfile() error {
	resp, err := fc.apiDriver.Me()
	fc.require.NoError(err)
	fc.response = resp
	return nil
}

func (fc *FeatureContext) theResponseShouldContainTheUserWithEmail(email string) error {
	var data map[string]any
	err := fc.decodeBody(fc.response.Body, &data)
	fc.require.NoError(err)
	fc.require.Equal(email, data["email"])
	return nil
}

// iLogOut keeps the revoked token on the driver so a later request can prove
// the session is really gone.
func (fc *FeatureContext) iLogOut() error {
	resp, err := fc.apiDriver.Logout()
	fc.require.NoError(err)
	fc.response = resp
	return nil
}
