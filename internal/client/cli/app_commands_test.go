package cli

import (
	"bufio"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/steveuniverseuwu/EvidenceShield8/internal/client/config"
	pb "github.com/steveuniverseuwu/EvidenceShield8/internal/proto"
	"github.com/stretchr/testify/require"
)

// ------------ helpers ------------

func readerFromLines(lines ...string) *bufio.Reader {
	if len(lines) == 0 || lines[len(lines)-1] != "" {
		lines = append(lines, "")
	}
	return bufio.NewReader(strings.NewReader(strings.Join(lines, "\n")))
}

func silencePrintln(t *testing.T) {
	t.Helper()
	orig := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = orig })
}

func newTestApp(api *fakeAPI, r *bufio.Reader) *App {
	cfg := &config.Config{}
	cfg.LoadDefaults()
	return &App{
		config: cfg,
		api:    api,
		reader: r,
	}
}

type fakeAPI struct {
	loginEmail    string
	loginPassword string
	loginResp     *pb.LoginResponse
	loginErr      error

	uploadReq  *pb.UploadEvidenceRequest
	uploadResp *pb.EvidenceRecord
	uploadErr  error

	batchReq  *pb.UploadBatchRequest
	batchResp *pb.UploadBatchResponse

	verifyReq  *pb.VerifyEvidenceRequest
	verifyResp *pb.VerifyEvidenceResponse

	shareFileID    string
	shareRecipient string

	shareBatchID        string
	shareBatchRecipient string

	downloadFileID string
	downloadResp   *pb.DownloadEvidenceResponse

	listResp []*pb.EvidenceRecord

	auditKind string
	auditCase string
	auditResp []*pb.AuditEntry

	resetCalled bool
}

func (f *fakeAPI) Close() error                   { return nil }
func (f *fakeAPI) Ping(ctx context.Context) error { return nil }
func (f *fakeAPI) Login(ctx context.Context, email, password string) (*pb.LoginResponse, error) {
	f.loginEmail = email
	f.loginPassword = password
	return f.loginResp, f.loginErr
}
func (f *fakeAPI) Upload(ctx context.Context, req *pb.UploadEvidenceRequest) (*pb.EvidenceRecord, error) {
	f.uploadReq = req
	return f.uploadResp, f.uploadErr
}
func (f *fakeAPI) UploadBatch(ctx context.Context, req *pb.UploadBatchRequest) (*pb.UploadBatchResponse, error) {
	f.batchReq = req
	return f.batchResp, nil
}
func (f *fakeAPI) Verify(ctx context.Context, req *pb.VerifyEvidenceRequest) (*pb.VerifyEvidenceResponse, error) {
	f.verifyReq = req
	return f.verifyResp, nil
}
func (f *fakeAPI) Share(ctx context.Context, fileID, recipientEmail string) (*pb.ShareEvidenceResponse, error) {
	f.shareFileID = fileID
	f.shareRecipient = recipientEmail
	return &pb.ShareEvidenceResponse{CommitToken: "0xabc", OriginalToken: "0xdef"}, nil
}
func (f *fakeAPI) ShareBatch(ctx context.Context, batchID, recipientEmail string) (*pb.ShareBatchResponse, error) {
	f.shareBatchID = batchID
	f.shareBatchRecipient = recipientEmail
	return &pb.ShareBatchResponse{CommitToken: "0xabc", OriginalToken: "0xdef", MerkleRoot: "r"}, nil
}
func (f *fakeAPI) Download(ctx context.Context, fileID string) (*pb.DownloadEvidenceResponse, error) {
	f.downloadFileID = fileID
	return f.downloadResp, nil
}
func (f *fakeAPI) List(ctx context.Context) ([]*pb.EvidenceRecord, error) {
	return f.listResp, nil
}
func (f *fakeAPI) AuditTrail(ctx context.Context, kind, caseNumber string) ([]*pb.AuditEntry, error) {
	f.auditKind = kind
	f.auditCase = caseNumber
	return f.auditResp, nil
}
func (f *fakeAPI) ResetStorage(ctx context.Context) error {
	f.resetCalled = true
	return nil
}

func stubPassword(t *testing.T, pw string) {
	t.Helper()
	orig := getPassword
	getPassword = func(io.Writer) ([]byte, error) { return []byte(pw), nil }
	t.Cleanup(func() { getPassword = orig })
}

// ------------ tests ------------

func TestLogin_SetsIdentity(t *testing.T) {
	silencePrintln(t)
	stubPassword(t, "Password123!")

	api := &fakeAPI{loginResp: &pb.LoginResponse{
		AccessToken: "jwt",
		Email:       "sarah.chen@agency.gov",
		Name:        "Det. Sarah Chen",
		Role:        "Detective",
	}}
	a := newTestApp(api, readerFromLines("sarah.chen@agency.gov"))

	err := a.Login(context.Background())
	require.NoError(t, err)
	require.Equal(t, "sarah.chen@agency.gov", api.loginEmail)
	require.Equal(t, "Password123!", api.loginPassword)
	require.True(t, a.isLoggedIn())
	require.Equal(t, "Detective", a.role)
}

func TestLogout_ClearsIdentity(t *testing.T) {
	a := newTestApp(&fakeAPI{}, readerFromLines())
	a.email = "x@y.z"
	a.role = "Analyst"

	require.NoError(t, a.Logout(context.Background()))
	require.False(t, a.isLoggedIn())
}

func TestUpload_SendsFileContent(t *testing.T) {
	silencePrintln(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "scene.jpg")
	require.NoError(t, os.WriteFile(path, []byte("jpeg bytes"), 0o600))

	api := &fakeAPI{uploadResp: &pb.EvidenceRecord{Id: "file_1_a"}}
	a := newTestApp(api, readerFromLines("CASE-2024-001", "crime scene photo", path))

	err := a.Upload(context.Background())
	require.NoError(t, err)
	require.NotNil(t, api.uploadReq)
	require.Equal(t, "CASE-2024-001", api.uploadReq.CaseNumber)
	require.Equal(t, "scene.jpg", api.uploadReq.File.FileName)
	require.Equal(t, []byte("jpeg bytes"), api.uploadReq.File.Data)
	require.NotEmpty(t, api.uploadReq.File.MimeType)
}

func TestUpload_MissingFileFails(t *testing.T) {
	silencePrintln(t)

	api := &fakeAPI{}
	a := newTestApp(api, readerFromLines("CASE-1", "desc", "/no/such/file.bin"))

	err := a.Upload(context.Background())
	require.Error(t, err)
	require.Nil(t, api.uploadReq)
}

func TestUploadBatch_CollectsFiles(t *testing.T) {
	silencePrintln(t)

	dir := t.TempDir()
	p1 := filepath.Join(dir, "a.txt")
	p2 := filepath.Join(dir, "b.txt")
	require.NoError(t, os.WriteFile(p1, []byte("one"), 0o600))
	require.NoError(t, os.WriteFile(p2, []byte("two"), 0o600))

	api := &fakeAPI{batchResp: &pb.UploadBatchResponse{BatchId: "batch_1_a"}}
	a := newTestApp(api, readerFromLines("CASE-7", "batch", p1, p2, ""))

	err := a.UploadBatch(context.Background())
	require.NoError(t, err)
	require.NotNil(t, api.batchReq)
	require.Len(t, api.batchReq.Files, 2)
	require.Equal(t, "a.txt", api.batchReq.Files[0].FileName)
	require.Equal(t, "b.txt", api.batchReq.Files[1].FileName)
}

func TestVerify_ProofIDRemote(t *testing.T) {
	silencePrintln(t)

	api := &fakeAPI{verifyResp: &pb.VerifyEvidenceResponse{Outcome: "verified"}}
	a := newTestApp(api, readerFromLines("ZKP-1700000000000-abc123def", "remote"))

	err := a.Verify(context.Background())
	require.NoError(t, err)
	require.Equal(t, "ZKP-1700000000000-abc123def", api.verifyReq.ProofId)
	require.Empty(t, api.verifyReq.FileId)
	require.Empty(t, api.verifyReq.LocalData)
}

func TestVerify_FileIDLocal(t *testing.T) {
	silencePrintln(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "copy.bin")
	require.NoError(t, os.WriteFile(path, []byte("payload"), 0o600))

	api := &fakeAPI{verifyResp: &pb.VerifyEvidenceResponse{Outcome: "verified"}}
	a := newTestApp(api, readerFromLines("file_1_abc", "local", path))

	err := a.Verify(context.Background())
	require.NoError(t, err)
	require.Equal(t, "file_1_abc", api.verifyReq.FileId)
	require.Equal(t, []byte("payload"), api.verifyReq.LocalData)
	require.Equal(t, "copy.bin", api.verifyReq.LocalFileName)
}

func TestShare_PassesArgs(t *testing.T) {
	silencePrintln(t)

	api := &fakeAPI{}
	a := newTestApp(api, readerFromLines("file_1_abc", "marcus.washington@agency.gov"))

	require.NoError(t, a.Share(context.Background()))
	require.Equal(t, "file_1_abc", api.shareFileID)
	require.Equal(t, "marcus.washington@agency.gov", api.shareRecipient)
}

func TestShareBatch_PassesArgs(t *testing.T) {
	silencePrintln(t)

	api := &fakeAPI{}
	a := newTestApp(api, readerFromLines("batch_1_abc", "marcus.washington@agency.gov"))

	require.NoError(t, a.ShareBatch(context.Background()))
	require.Equal(t, "batch_1_abc", api.shareBatchID)
	require.Equal(t, "marcus.washington@agency.gov", api.shareBatchRecipient)
}

func TestDownload_SavesFile(t *testing.T) {
	silencePrintln(t)
	t.Chdir(t.TempDir())

	api := &fakeAPI{downloadResp: &pb.DownloadEvidenceResponse{
		FileName: "scene.jpg",
		MimeType: "image/jpeg",
		Data:     []byte("jpeg bytes"),
	}}
	a := newTestApp(api, readerFromLines("file_1_abc"))

	err := a.Download(context.Background())
	require.NoError(t, err)
	require.Equal(t, "file_1_abc", api.downloadFileID)

	saved, err := os.ReadFile(filepath.Join(a.config.DownloadDir, "scene.jpg"))
	require.NoError(t, err)
	require.Equal(t, []byte("jpeg bytes"), saved)
}

func TestAudit_PassesFilters(t *testing.T) {
	silencePrintln(t)

	api := &fakeAPI{auditResp: []*pb.AuditEntry{{Id: "audit_1_a", Kind: "upload"}}}
	a := newTestApp(api, readerFromLines("upload", "CASE-2024-001"))

	require.NoError(t, a.Audit(context.Background()))
	require.Equal(t, "upload", api.auditKind)
	require.Equal(t, "CASE-2024-001", api.auditCase)
}

func TestReset_RequiresConfirmation(t *testing.T) {
	silencePrintln(t)

	api := &fakeAPI{}
	a := newTestApp(api, readerFromLines("no"))

	require.NoError(t, a.Reset(context.Background()))
	require.False(t, api.resetCalled)

	a = newTestApp(api, readerFromLines("yes"))
	require.NoError(t, a.Reset(context.Background()))
	require.True(t, api.resetCalled)
}
